package presentation

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
)

// StatWeights scale each stat's distance from its baseline. Beauty and
// confidence are measured from Config.StatBaseline; stress and shame from 0.
type StatWeights struct {
	Beauty     float64 `yaml:"beauty"`
	Confidence float64 `yaml:"confidence"`
	Stress     float64 `yaml:"stress"`
	Shame      float64 `yaml:"shame"`
}

// PassConfig shapes the logistic pass-chance curve.
type PassConfig struct {
	Threshold float64 `yaml:"threshold"`
	Slope     float64 `yaml:"slope"`
}

// Tier maps every score up to and including Max onto Label.
type Tier struct {
	Max   float64 `yaml:"max"`
	Label Label   `yaml:"label"`
}

// Config is the scoring table. It is read-only once an Engine is built.
type Config struct {
	BaseUnit          float64                      `yaml:"base_unit"`
	SlotWeights       map[catalog.BodySlot]float64 `yaml:"slot_weights"`
	DefaultSlotWeight float64                      `yaml:"default_slot_weight"`
	TypeWeights       map[string]float64           `yaml:"type_weights"`
	DefaultTypeWeight float64                      `yaml:"default_type_weight"`
	TagBoosts         map[string]float64           `yaml:"tag_boosts"`
	StatBaseline      int                          `yaml:"stat_baseline"`
	StatWeights       StatWeights                  `yaml:"stat_weights"`
	Pass              PassConfig                   `yaml:"pass"`
	Tiers             []Tier                       `yaml:"tiers"`
	MaxScore          float64                      `yaml:"max_score"`
	// TorsoSlots and LegsSlots drive the public exposure gate: at least one
	// equipped item must sit in each group.
	TorsoSlots []catalog.BodySlot `yaml:"torso_slots"`
	LegsSlots  []catalog.BodySlot `yaml:"legs_slots"`
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		BaseUnit: 20,
		SlotWeights: map[catalog.BodySlot]float64{
			catalog.SlotOverHead:   0.9,
			catalog.SlotHead:       0.8,
			catalog.SlotFace:       0.4,
			catalog.SlotNeck:       0.6,
			catalog.SlotHands:      0.4,
			catalog.SlotUpper:      1.2,
			catalog.SlotOverUpper:  0.6,
			catalog.SlotLower:      1.2,
			catalog.SlotUnderUpper: 0.15,
			catalog.SlotUnderLower: 0.15,
			catalog.SlotLegs:       0.8,
			catalog.SlotFeet:       1.3,
		},
		DefaultSlotWeight: 0.5,
		TypeWeights: map[string]float64{
			"dresses":    1.5,
			"shoes":      1.3,
			"wigs":       1.2,
			"corsets":    1.15,
			"bottoms":    1.15,
			"tops":       0.9,
			"headpieces": 0.8,
			"stockings":  0.8,
			"collars":    0.6,
			"neckpieces": 0.6,
			"jewellery":  0.5,
			"gloves":     0.5,
			"bra":        0.35,
			"panties":    0.35,
			"glasses":    0.2,
			"jackets":    0.2,
			"belts":      0.2,
			"boxers":     0,
			"socks":      0,
		},
		DefaultTypeWeight: 0.6,
		TagBoosts: map[string]float64{
			"elegant":      0.06,
			"provocative":  0.10,
			"restrictive":  0,
			"professional": -0.04,
			"androgynous":  -0.02,
			"casual":       -0.04,
			"masculine":    -0.10,
		},
		StatBaseline: 10,
		StatWeights: StatWeights{
			Beauty:     0.5,
			Confidence: 0.4,
			Stress:     -0.5,
			Shame:      -0.4,
		},
		Pass: PassConfig{Threshold: 58, Slope: 9},
		Tiers: []Tier{
			{Max: 15, Label: LabelMale},
			{Max: 35, Label: LabelSoftMale},
			{Max: 55, Label: LabelAndrogynous},
			{Max: 75, Label: LabelFemaleLeaning},
			{Max: 9999, Label: LabelFemale},
		},
		MaxScore:   120,
		TorsoSlots: []catalog.BodySlot{catalog.SlotUpper, catalog.SlotOverUpper},
		LegsSlots:  []catalog.BodySlot{catalog.SlotLower},
	}
}

// LoadConfig overlays the YAML file at path onto DefaultConfig. Map entries
// are merged key by key; lists replace the defaults.
//
// Precondition: path must be a readable YAML file.
// Postcondition: the returned Config is valid or an error is returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading presentation config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing presentation config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating presentation config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the table for values that would make scoring meaningless.
//
// Postcondition: returns nil iff every field is usable.
func (c Config) Validate() error {
	var errs []string
	if c.BaseUnit <= 0 {
		errs = append(errs, fmt.Sprintf("base_unit must be > 0, got %v", c.BaseUnit))
	}
	if c.MaxScore <= 0 {
		errs = append(errs, fmt.Sprintf("max_score must be > 0, got %v", c.MaxScore))
	}
	if c.Pass.Slope <= 0 {
		errs = append(errs, fmt.Sprintf("pass.slope must be > 0, got %v", c.Pass.Slope))
	}
	if len(c.Tiers) == 0 {
		errs = append(errs, "tiers must not be empty")
	}
	for i := 1; i < len(c.Tiers); i++ {
		if c.Tiers[i].Max <= c.Tiers[i-1].Max {
			errs = append(errs, fmt.Sprintf("tiers[%d].max must exceed tiers[%d].max", i, i-1))
		}
	}
	for i, t := range c.Tiers {
		if !t.Label.valid() {
			errs = append(errs, fmt.Sprintf("tiers[%d].label %q is unknown", i, t.Label))
		}
	}
	for slot := range c.SlotWeights {
		if !slot.Valid() {
			errs = append(errs, fmt.Sprintf("slot_weights has unknown body slot %q", slot))
		}
	}
	if len(c.TorsoSlots) == 0 || len(c.LegsSlots) == 0 {
		errs = append(errs, "torso_slots and legs_slots must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid presentation config: %s", strings.Join(errs, "; "))
	}
	return nil
}
