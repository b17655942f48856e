package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a rule set from a JSON or YAML file, picked by extension.
// Malformed definitions are fatal: a rule set either loads fully or not at
// all.
func LoadFile(path string) (map[string]*Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(data)
	case ".yaml", ".yml":
		return LoadYAML(data)
	default:
		return nil, fmt.Errorf("unsupported rule file extension %q", filepath.Ext(path))
	}
}

// LoadJSON parses a JSON rule set.
func LoadJSON(data []byte) (map[string]*Rule, error) {
	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding rules: %w", err)
	}
	return parseAndReport(raw)
}

// LoadYAML parses a YAML rule set.
func LoadYAML(data []byte) (map[string]*Rule, error) {
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding rules: %w", err)
	}
	return parseAndReport(raw)
}

func parseAndReport(raw map[string]map[string]any) (map[string]*Rule, error) {
	set, err := ParseRuleSet(raw)
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded %d rules", len(set))
	return set, nil
}
