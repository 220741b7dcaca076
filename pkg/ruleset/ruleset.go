package ruleset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

// Document is a rule set together with its custom messages.
type Document struct {
	Rules    validator.RuleSet
	Messages validator.Messages
}

// Validate runs the document against data with v.
func (d *Document) Validate(ctx context.Context, v *validator.Validator, data map[string]any) []string {
	return v.Validate(ctx, data, d.Rules, d.Messages)
}

// Parse reads a YAML (or JSON) rule document:
//
//	rules:
//	  name: required|string|minLength:3
//	  tags: [required, "maxLength:5"]
//	messages:
//	  name:
//	    required: Please tell us your name
//
// Fields keep the order they have in the document. A rule list is joined
// with the pipe separator.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}

	body := root.Content[0]
	if body.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a mapping at line %d", ErrInvalidDocument, body.Line)
	}

	doc := &Document{}
	for i := 0; i+1 < len(body.Content); i += 2 {
		key, value := body.Content[i], body.Content[i+1]
		switch key.Value {
		case "rules":
			rules, err := parseRules(value)
			if err != nil {
				return nil, err
			}
			doc.Rules = rules
		case "messages":
			messages, err := parseMessages(value)
			if err != nil {
				return nil, err
			}
			doc.Messages = messages
		default:
			return nil, fmt.Errorf("%w: unknown key %q at line %d", ErrInvalidDocument, key.Value, key.Line)
		}
	}

	if doc.Rules == nil {
		return nil, fmt.Errorf("%w: missing rules", ErrInvalidDocument)
	}
	return doc, nil
}

// Load parses a document read from r.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ruleset: read document: %w", err)
	}
	return Parse(data)
}

// LoadFile parses the document stored at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ruleset: read %s: %w", path, err)
	}
	return Parse(data)
}

func parseRules(node *yaml.Node) (validator.RuleSet, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a mapping at line %d", ErrInvalidRules, node.Line)
	}

	rules := make(validator.RuleSet, 0, len(node.Content)/2)
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, fmt.Errorf("%w: invalid field name at line %d", ErrInvalidRules, key.Line)
		}
		if seen[key.Value] {
			return nil, fmt.Errorf("%w: duplicate field %q at line %d", ErrInvalidRules, key.Value, key.Line)
		}
		seen[key.Value] = true

		expr, err := ruleString(value)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidRules, key.Value, err)
		}
		rules = append(rules, validator.Field(key.Value, expr))
	}
	return rules, nil
}

func ruleString(node *yaml.Node) (string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Value, nil
	case yaml.SequenceNode:
		parts := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return "", fmt.Errorf("expected a rule expression at line %d", item.Line)
			}
			parts = append(parts, item.Value)
		}
		return strings.Join(parts, "|"), nil
	}
	return "", fmt.Errorf("expected a string or list at line %d", node.Line)
}

func parseMessages(node *yaml.Node) (validator.Messages, error) {
	var raw map[string]map[string]string
	if err := node.Decode(&raw); err != nil {
		return nil, errors.Join(ErrInvalidMessages, err)
	}

	messages := make(validator.Messages, len(raw))
	for field, byRule := range raw {
		for rule, msg := range byRule {
			messages.Set(field, rule, msg)
		}
	}
	return messages, nil
}
