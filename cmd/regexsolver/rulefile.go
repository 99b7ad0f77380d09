package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// RuleFile is a YAML document naming a set of patterns and an operation
// combining a subset of them, the on-disk shape for regexsolver -rules.
//
// Grounded on projectdiscovery-alterx's Config (config.go): a small,
// flat struct loaded with goccy/go-yaml rather than a generic config
// framework.
type RuleFile struct {
	Patterns  map[string]string `yaml:"patterns"`
	Operation string            `yaml:"operation"` // union, intersection, subtraction
	Operands  []string          `yaml:"operands"`
}

// loadRuleFile reads and parses a RuleFile from path.
func loadRuleFile(path string) (*RuleFile, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rf RuleFile
	if err := yaml.Unmarshal(bin, &rf); err != nil {
		return nil, fmt.Errorf("parsing rule file: %w", yaml.FormatError(err, false, true))
	}
	return &rf, nil
}

// validate checks that every name in Operands refers to an entry in
// Patterns and that Operation is one this CLI knows how to run.
func (rf *RuleFile) validate() error {
	switch rf.Operation {
	case "union", "intersection", "subtraction":
	default:
		return fmt.Errorf("unknown operation %q (want union, intersection, or subtraction)", rf.Operation)
	}
	if len(rf.Operands) == 0 {
		return fmt.Errorf("rule file names no operands")
	}
	if rf.Operation == "subtraction" && len(rf.Operands) != 2 {
		return fmt.Errorf("subtraction takes exactly 2 operands, got %d", len(rf.Operands))
	}
	for _, name := range rf.Operands {
		if _, ok := rf.Patterns[name]; !ok {
			return fmt.Errorf("operand %q has no matching pattern", name)
		}
	}
	return nil
}
