package catalog

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// EffectKind enumerates the on-use effects a usable item may carry.
type EffectKind string

// Effect kinds.
const (
	EffectStatAdd      EffectKind = "statAdd"
	EffectAddStatus    EffectKind = "addStatus"
	EffectRemoveStatus EffectKind = "removeStatus"
)

// Effect is applied to the character sheet when its item is used.
type Effect struct {
	Kind   EffectKind `yaml:"kind" json:"kind"`
	Stat   string     `yaml:"stat" json:"stat,omitempty"`
	Add    int        `yaml:"add" json:"add,omitempty"`
	Status string     `yaml:"status" json:"status,omitempty"`
	Turns  int        `yaml:"turns" json:"turns,omitempty"`
}

// Validate checks that the fields required by Kind are present.
func (e Effect) Validate() error {
	switch e.Kind {
	case EffectStatAdd:
		if e.Stat == "" {
			return errors.New("statAdd requires stat")
		}
	case EffectAddStatus:
		if e.Status == "" {
			return errors.New("addStatus requires status")
		}
		if e.Turns < 0 {
			return fmt.Errorf("addStatus turns must be >= 0; got %d", e.Turns)
		}
	case EffectRemoveStatus:
		if e.Status == "" {
			return errors.New("removeStatus requires status")
		}
	default:
		return fmt.Errorf("kind must be one of statAdd, addStatus, removeStatus; got %q", e.Kind)
	}
	return nil
}

// String formats the effect as a single player-facing line.
func (e Effect) String() string {
	switch e.Kind {
	case EffectStatAdd:
		return fmt.Sprintf("%s %+d", Capitalize(e.Stat), e.Add)
	case EffectAddStatus:
		return fmt.Sprintf("Status: %s (%d turns)", e.Status, e.Turns)
	case EffectRemoveStatus:
		return "Remove status: " + e.Status
	}
	return string(e.Kind)
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
