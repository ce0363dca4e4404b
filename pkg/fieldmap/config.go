// Package fieldmap translates logical field names and picklist labels into the
// concrete Salesforce API names configured for an org.
//
// The mapping lives in up to three YAML documents inside a config directory:
//
//	field_map.yaml        lead: {thesis_tag: Thesis_Tag__c}
//	stages.yaml           opportunity_stages: {Diligence: "Due Diligence"}
//	required_fields.yaml  opportunity: [Name, StageName, CloseDate]
//
// Every document is optional. Lookups that find no configured entry fall back
// to built-in defaults and finally to the logical name itself.
package fieldmap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	FieldMapFile       = "field_map.yaml"
	StagesFile         = "stages.yaml"
	RequiredFieldsFile = "required_fields.yaml"
)

// Config is the loaded mapping configuration. It is not modified after Load.
type Config struct {
	// FieldMap maps object -> logical field name -> API field name.
	FieldMap map[string]map[string]string
	// Stages maps value category -> logical value -> picklist value.
	Stages map[string]map[string]string
	// RequiredFields maps object -> ordered API field names required on create.
	RequiredFields map[string][]string
}

// ParseError is returned when a config document exists but cannot be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Empty returns a Config with no overrides.
func Empty() *Config {
	return &Config{
		FieldMap:       map[string]map[string]string{},
		Stages:         map[string]map[string]string{},
		RequiredFields: map[string][]string{},
	}
}

// Load reads the mapping documents from dir. Missing files are not an error.
func Load(dir string) (*Config, error) {
	cfg := Empty()

	if err := readDocument(filepath.Join(dir, FieldMapFile), &cfg.FieldMap); err != nil {
		return nil, err
	}
	if err := readDocument(filepath.Join(dir, StagesFile), &cfg.Stages); err != nil {
		return nil, err
	}
	if err := readDocument(filepath.Join(dir, RequiredFieldsFile), &cfg.RequiredFields); err != nil {
		return nil, err
	}

	return cfg, nil
}

func readDocument[T any](path string, out *map[string]T) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc map[string]T
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	if doc != nil {
		*out = doc
	}
	return nil
}
