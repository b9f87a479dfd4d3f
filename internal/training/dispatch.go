package training

var fields = map[Kind][]string{
	KindRunning:  {"action", "duration", "weight"},
	KindWalking:  {"action", "duration", "weight", "height"},
	KindSwimming: {"action", "duration", "weight", "length_pool", "count_pool"},
}

// Kinds lists the supported variants in a stable order. Error messages use
// it to name the accepted codes.
func Kinds() []Kind {
	return []Kind{KindRunning, KindWalking, KindSwimming}
}

// ParseKind maps a package code to its Kind.
func ParseKind(code string) (Kind, error) {
	kind := Kind(code)
	if _, ok := fields[kind]; !ok {
		return "", &UnknownActivityError{Code: code}
	}
	return kind, nil
}

// Arity returns the number of readings a variant expects, or 0 for an
// unknown kind.
func Arity(kind Kind) int {
	return len(fields[kind])
}

// Fields returns the declared reading names of a variant in positional
// order, as quoted by ArityMismatchError.
func Fields(kind Kind) []string {
	names := fields[kind]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Resolve validates a raw sensor package and builds the matching
// calculator. Unknown codes fail with an UnknownActivityError; a wrong
// reading count fails with an ArityMismatchError before anything is built.
func Resolve(code string, readings []float64) (Calculator, error) {
	kind, err := ParseKind(code)
	if err != nil {
		return nil, err
	}
	if err := checkArity(kind, readings); err != nil {
		return nil, err
	}

	var calc Calculator
	switch kind {
	case KindRunning:
		calc, err = NewRunning(readings)
	case KindWalking:
		calc, err = NewWalking(readings)
	default:
		calc, err = NewSwimming(readings)
	}
	if err != nil {
		return nil, err
	}
	return calc, nil
}
