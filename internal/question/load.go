package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadCatalog reads, parses, and validates a question catalog file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read question catalog: %w", err)
	}
	catalog, err := parseCatalog(data, path)
	if err != nil {
		return Catalog{}, err
	}
	normalized, err := NormalizeCatalog(catalog)
	if err != nil {
		return Catalog{}, err
	}
	return normalized, nil
}

func parseCatalog(data []byte, path string) (Catalog, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSONCatalog(data)
	}
	return parseYAMLCatalog(data)
}

func parseJSONCatalog(data []byte) (Catalog, error) {
	var catalog Catalog
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&catalog); err != nil {
		return Catalog{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Catalog{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Catalog{}, fmt.Errorf("parse json: %w", err)
	}
	return catalog, nil
}

func parseYAMLCatalog(data []byte) (Catalog, error) {
	var catalog Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&catalog); err != nil {
		return Catalog{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Catalog{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Catalog{}, fmt.Errorf("parse yaml: %w", err)
	}
	return catalog, nil
}
