package parser

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/sstent/fitstats/internal/models"
)

// JSONParser reads either a single {"type": ..., "data": [...]} object or an
// array of them.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) ParseData(data []byte) ([]models.Package, error) {
	trimmed := bytes.TrimSpace(data)

	var packages []models.Package
	if bytes.HasPrefix(trimmed, []byte("{")) {
		var pkg models.Package
		if err := json.Unmarshal(trimmed, &pkg); err != nil {
			return nil, fmt.Errorf("failed to decode JSON package: %w", err)
		}
		packages = []models.Package{pkg}
	} else if err := json.Unmarshal(trimmed, &packages); err != nil {
		return nil, fmt.Errorf("failed to decode JSON packages: %w", err)
	}

	if len(packages) == 0 {
		return nil, ErrNoActivityData
	}
	for i := range packages {
		packages[i].Source = fmt.Sprintf("item %d", i+1)
	}
	return packages, nil
}
