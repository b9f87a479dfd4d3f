package parser

import (
	"bytes"
	"os"
)

type FileType string

const (
	FIT  FileType = "fit"
	TCX  FileType = "tcx"
	JSON FileType = "json"
	Text FileType = "text"
)

func DetectFileTypeFromFile(filepath string) (FileType, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	// Read first 512 bytes for detection
	header := make([]byte, 512)
	n, err := file.Read(header)
	if err != nil && n == 0 {
		return "", err
	}

	return DetectFileTypeFromData(header[:n]), nil
}

func DetectFileTypeFromData(data []byte) FileType {
	// FIT files carry ".FIT" at bytes 8..12 of the header
	if len(data) >= 12 && bytes.Equal(data[8:12], []byte(".FIT")) {
		return FIT
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	// Check for XML-based formats
	if bytes.HasPrefix(trimmed, []byte("<")) &&
		bytes.Contains(head(trimmed, 500), []byte("TrainingCenterDatabase")) {
		return TCX
	}
	if bytes.HasPrefix(trimmed, []byte("[")) || bytes.HasPrefix(trimmed, []byte("{")) {
		return JSON
	}

	return Text
}

func head(data []byte, n int) []byte {
	if len(data) < n {
		return data
	}
	return data[:n]
}
