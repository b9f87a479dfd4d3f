package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sstent/fitstats/internal/models"
)

// NewParser creates a parser based on file extension or content
func NewParser(filename string, athlete models.Athlete) (Parser, error) {
	// First try by extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".fit":
		return NewFITParser(athlete), nil
	case ".tcx":
		return NewTCXParser(athlete), nil
	case ".json":
		return NewJSONParser(), nil
	case ".txt":
		return NewTextParser(), nil
	}

	// If extension doesn't match, detect by content
	fileType, err := DetectFileTypeFromFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to detect file type: %w", err)
	}
	return NewParserForType(fileType, athlete)
}

// NewParserFromData creates a parser based on file content
func NewParserFromData(data []byte, athlete models.Athlete) (Parser, error) {
	return NewParserForType(DetectFileTypeFromData(data), athlete)
}

func NewParserForType(fileType FileType, athlete models.Athlete) (Parser, error) {
	switch fileType {
	case FIT:
		return NewFITParser(athlete), nil
	case TCX:
		return NewTCXParser(athlete), nil
	case JSON:
		return NewJSONParser(), nil
	case Text:
		return NewTextParser(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, fileType)
	}
}
