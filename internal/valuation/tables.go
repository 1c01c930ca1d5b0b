package valuation

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultTablesYAML []byte

// Tier is a named quarterback tier with its multiplier and member names.
type Tier struct {
	Name       string   `yaml:"name"`
	Multiplier float64  `yaml:"multiplier"`
	Players    []string `yaml:"players"`
}

// AgeStep applies Delta to players whose age is <= MaxAge. MaxAge 0 marks the open-ended final step.
type AgeStep struct {
	MaxAge int     `yaml:"max_age"`
	Delta  float64 `yaml:"delta"`
}

// AgeImpact scales age deltas by league type.
type AgeImpact struct {
	Dynasty float64 `yaml:"dynasty"`
	Redraft float64 `yaml:"redraft"`
}

// Tables holds every tunable heuristic used by the value model.
type Tables struct {
	Version             string               `yaml:"version"`
	DefaultQBTier       string               `yaml:"default_qb_tier"`
	QBTiers             []Tier               `yaml:"qb_tiers"`
	PositionMultipliers map[string]float64   `yaml:"position_multipliers"`
	DynastyMultipliers  map[string]float64   `yaml:"dynasty_multipliers"`
	AgeImpact           AgeImpact            `yaml:"age_impact"`
	AgeCurves           map[string][]AgeStep `yaml:"age_curves"`
}

// DefaultTables returns the embedded tables. The embedded file is validated by tests.
func DefaultTables() *Tables {
	t, err := ParseTables(defaultTablesYAML)
	if err != nil {
		panic(fmt.Sprintf("valuation: embedded tables invalid: %v", err))
	}
	return t
}

// LoadTables reads tables from path, or returns the embedded defaults when path is empty.
func LoadTables(path string) (*Tables, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultTables(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read heuristics: %w", err)
	}
	return ParseTables(data)
}

// ParseTables decodes and validates a YAML table document.
func ParseTables(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse heuristics: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that the tables are internally consistent.
func (t *Tables) Validate() error {
	if len(t.QBTiers) == 0 {
		return errors.New("heuristics: at least one qb tier is required")
	}
	foundDefault := false
	for _, tier := range t.QBTiers {
		if tier.Name == "" {
			return errors.New("heuristics: qb tier without a name")
		}
		if tier.Multiplier <= 0 {
			return fmt.Errorf("heuristics: tier %s multiplier must be positive", tier.Name)
		}
		if tier.Name == t.DefaultQBTier {
			foundDefault = true
		}
	}
	if !foundDefault {
		return fmt.Errorf("heuristics: default tier %q is not defined", t.DefaultQBTier)
	}
	for pos, m := range t.PositionMultipliers {
		if m <= 0 {
			return fmt.Errorf("heuristics: position multiplier for %s must be positive", pos)
		}
	}
	for pos, m := range t.DynastyMultipliers {
		if m <= 0 {
			return fmt.Errorf("heuristics: dynasty multiplier for %s must be positive", pos)
		}
	}
	if t.AgeImpact.Dynasty < 0 || t.AgeImpact.Redraft < 0 {
		return errors.New("heuristics: age impact must not be negative")
	}
	for pos, steps := range t.AgeCurves {
		if err := validateCurve(steps); err != nil {
			return fmt.Errorf("heuristics: age curve %s: %w", pos, err)
		}
	}
	return nil
}

func validateCurve(steps []AgeStep) error {
	if len(steps) == 0 {
		return errors.New("empty curve")
	}
	prev := 0
	for i, step := range steps {
		last := i == len(steps)-1
		if last {
			if step.MaxAge != 0 {
				return errors.New("final step must be open-ended")
			}
			continue
		}
		if step.MaxAge <= prev {
			return fmt.Errorf("step %d max_age must increase", i)
		}
		if step.Delta <= -1 {
			return fmt.Errorf("step %d delta would zero the value", i)
		}
		prev = step.MaxAge
	}
	return nil
}

// QBTier returns the first tier matching name, or the default tier.
// A full-name pass over every tier runs before the first-name fallback pass.
func (t *Tables) QBTier(name string) Tier {
	full := normalizeName(name)
	if full != "" {
		for _, tier := range t.QBTiers {
			for _, member := range tier.Players {
				if containsEither(full, normalizeName(member)) {
					return tier
				}
			}
		}
		first := firstToken(full)
		for _, tier := range t.QBTiers {
			for _, member := range tier.Players {
				if containsEither(first, firstToken(normalizeName(member))) {
					return tier
				}
			}
		}
	}
	return t.defaultTier()
}

func (t *Tables) defaultTier() Tier {
	for _, tier := range t.QBTiers {
		if tier.Name == t.DefaultQBTier {
			return tier
		}
	}
	return t.QBTiers[len(t.QBTiers)-1]
}

// PositionMultiplier returns the non-QB position multiplier; unknown positions get 1.0.
func (t *Tables) PositionMultiplier(pos string) float64 {
	if m, ok := t.PositionMultipliers[pos]; ok {
		return m
	}
	return 1.0
}

// DynastyMultiplier returns the dynasty-only position multiplier; unknown positions get 1.0.
func (t *Tables) DynastyMultiplier(pos string) float64 {
	if m, ok := t.DynastyMultipliers[pos]; ok {
		return m
	}
	return 1.0
}

// AgeDelta returns the curve delta for the position and age; 0 when no curve or age is unknown.
func (t *Tables) AgeDelta(pos string, age int) float64 {
	if age <= 0 {
		return 0
	}
	steps := t.AgeCurves[pos]
	for _, step := range steps {
		if step.MaxAge == 0 || age <= step.MaxAge {
			return step.Delta
		}
	}
	return 0
}

// Impact returns the age impact for the league type.
func (t *Tables) Impact(dynasty bool) float64 {
	if dynasty {
		return t.AgeImpact.Dynasty
	}
	return t.AgeImpact.Redraft
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func firstToken(name string) string {
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i]
	}
	return name
}

func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
