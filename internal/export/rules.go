package export

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rahulraj-lab/Focus-flow/internal/models"
	"github.com/rahulraj-lab/Focus-flow/internal/schedule"
)

const rulesVersion = 1

type rulesDocument struct {
	Version int                    `yaml:"version"`
	Rules   []models.RecurringRule `yaml:"rules"`
}

// EncodeRules writes rules as a versioned YAML document.
func EncodeRules(w io.Writer, rules []models.RecurringRule) error {
	if rules == nil {
		rules = []models.RecurringRule{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rulesDocument{Version: rulesVersion, Rules: rules}); err != nil {
		return fmt.Errorf("failed to encode rules: %w", err)
	}
	return enc.Close()
}

// DecodeRules reads a document produced by EncodeRules. Rules without an
// ID are assigned one with newID; every rule must validate.
func DecodeRules(r io.Reader, newID schedule.IDFunc) ([]models.RecurringRule, error) {
	var doc rulesDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.RecurringRule{}, nil
		}
		return nil, fmt.Errorf("failed to decode rules: %w", err)
	}
	if doc.Version > rulesVersion {
		return nil, fmt.Errorf("rules document version %d is newer than supported version %d", doc.Version, rulesVersion)
	}

	seen := make(map[string]bool, len(doc.Rules))
	rules := make([]models.RecurringRule, 0, len(doc.Rules))
	for i, rule := range doc.Rules {
		if rule.ID == "" {
			rule.ID = newID()
		}
		if seen[rule.ID] {
			return nil, fmt.Errorf("rule %d: duplicate id %s", i+1, rule.ID)
		}
		seen[rule.ID] = true
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// MergeRules overlays imported on existing. An imported rule replaces an
// existing one with the same ID; others are appended in import order.
func MergeRules(existing, imported []models.RecurringRule) []models.RecurringRule {
	out := make([]models.RecurringRule, len(existing))
	copy(out, existing)

	index := make(map[string]int, len(out))
	for i, r := range out {
		index[r.ID] = i
	}
	for _, r := range imported {
		if i, ok := index[r.ID]; ok {
			out[i] = r
			continue
		}
		index[r.ID] = len(out)
		out = append(out, r)
	}
	return out
}
