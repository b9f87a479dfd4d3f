// Package parser turns input files into raw sensor packages.
package parser

import (
	"errors"
	"fmt"
	"os"

	"github.com/sstent/fitstats/internal/models"
)

var (
	ErrNoActivityData      = errors.New("no activity data found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// Parser decodes one input format into packages.
type Parser interface {
	ParseData(data []byte) ([]models.Package, error)
}

// ParseFile reads filename and decodes it with p. Every package is tagged
// with the file name as its source.
func ParseFile(p Parser, filename string) ([]models.Package, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	packages, err := p.ParseData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	for i := range packages {
		packages[i].Source = filename + ":" + packages[i].Source
	}
	return packages, nil
}
