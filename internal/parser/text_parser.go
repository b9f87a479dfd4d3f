package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/sstent/fitstats/internal/models"
)

// TextParser reads one package per line: the activity code followed by its
// readings, separated by blanks or commas. Blank lines and lines starting
// with '#' are skipped.
type TextParser struct{}

func NewTextParser() *TextParser {
	return &TextParser{}
}

func (p *TextParser) ParseData(data []byte) ([]models.Package, error) {
	var packages []models.Package

	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		if len(fields) == 0 {
			continue
		}
		pkg := models.Package{
			Code:     fields[0],
			Readings: make([]float64, 0, len(fields)-1),
			Source:   fmt.Sprintf("line %d", line),
		}
		for _, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid reading %q: %w", line, field, err)
			}
			pkg.Readings = append(pkg.Readings, v)
		}
		packages = append(packages, pkg)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(packages) == 0 {
		return nil, ErrNoActivityData
	}
	return packages, nil
}
