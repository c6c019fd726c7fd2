// Package stats holds the character sheet that usable items modify and the
// presentation engine reads.
package stats

import (
	"sort"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
	"github.com/cory-johannsen/paperdoll/internal/game/presentation"
)

// AttributeBaseline is the starting value of every attribute and skill.
const AttributeBaseline = 10

// Attribute names.
var Attributes = []string{
	"strength", "dexterity", "endurance", "intelligence",
	"charisma", "willpower", "luck", "beauty",
}

// Skill names.
var Skills = []string{"deception", "athletics"}

// StatusDefaults are the starting meter values.
var StatusDefaults = map[string]int{
	"stress":     0,
	"confidence": AttributeBaseline,
	"shame":      0,
	"arousal":    0,
	"fatigue":    0,
}

// Sheet is the persisted character data. Effects maps a timed status to its
// remaining turns.
type Sheet struct {
	Attributes map[string]int `json:"attributes"`
	Skills     map[string]int `json:"skills"`
	Status     map[string]int `json:"status"`
	Effects    map[string]int `json:"effects"`
}

// NewSheet returns a sheet at the baseline.
func NewSheet() *Sheet {
	s := &Sheet{}
	s.Normalize()
	return s
}

// Normalize fills every missing map and default. Existing values are kept,
// so saves from older layouts load cleanly.
func (s *Sheet) Normalize() {
	if s.Attributes == nil {
		s.Attributes = make(map[string]int, len(Attributes))
	}
	if s.Skills == nil {
		s.Skills = make(map[string]int, len(Skills))
	}
	if s.Status == nil {
		s.Status = make(map[string]int, len(StatusDefaults))
	}
	if s.Effects == nil {
		s.Effects = make(map[string]int)
	}
	for _, name := range Attributes {
		if _, ok := s.Attributes[name]; !ok {
			s.Attributes[name] = AttributeBaseline
		}
	}
	for _, name := range Skills {
		if _, ok := s.Skills[name]; !ok {
			s.Skills[name] = AttributeBaseline
		}
	}
	for name, v := range StatusDefaults {
		if _, ok := s.Status[name]; !ok {
			s.Status[name] = v
		}
	}
}

// Value returns the named stat from attributes, then skills, then status.
func (s *Sheet) Value(name string) (int, bool) {
	if v, ok := s.Attributes[name]; ok {
		return v, true
	}
	if v, ok := s.Skills[name]; ok {
		return v, true
	}
	v, ok := s.Status[name]
	return v, ok
}

// ApplyEffects applies on-use effects in order.
//
// statAdd adds to whichever map already holds the stat; an unknown stat is
// created as an attribute. addStatus keeps the longer of the existing and new
// durations. removeStatus drops the status.
func (s *Sheet) ApplyEffects(effects []catalog.Effect) {
	s.Normalize()
	for _, e := range effects {
		switch e.Kind {
		case catalog.EffectStatAdd:
			switch {
			case hasKey(s.Attributes, e.Stat):
				s.Attributes[e.Stat] += e.Add
			case hasKey(s.Skills, e.Stat):
				s.Skills[e.Stat] += e.Add
			case hasKey(s.Status, e.Stat):
				s.Status[e.Stat] += e.Add
			default:
				s.Attributes[e.Stat] = e.Add
			}
		case catalog.EffectAddStatus:
			s.Effects[e.Status] = max(s.Effects[e.Status], e.Turns)
		case catalog.EffectRemoveStatus:
			delete(s.Effects, e.Status)
		}
	}
}

func hasKey(m map[string]int, k string) bool {
	_, ok := m[k]
	return ok
}

// Tick advances timed statuses by one turn.
//
// Postcondition: returns the statuses that expired, sorted.
func (s *Sheet) Tick() []string {
	var expired []string
	for name, turns := range s.Effects {
		if turns <= 1 {
			expired = append(expired, name)
			delete(s.Effects, name)
			continue
		}
		s.Effects[name] = turns - 1
	}
	sort.Strings(expired)
	return expired
}

// Presentation returns the stats that modify the presentation score.
func (s *Sheet) Presentation() presentation.Stats {
	return presentation.Stats{
		Beauty:     s.Attributes["beauty"],
		Confidence: s.Status["confidence"],
		Stress:     s.Status["stress"],
		Shame:      s.Status["shame"],
	}
}

// Unmet returns the requirements the sheet does not satisfy. Requirements on
// unknown stats are unmet.
func (s *Sheet) Unmet(reqs []catalog.Requirement) []catalog.Requirement {
	var out []catalog.Requirement
	for _, r := range reqs {
		if v, ok := s.Value(r.Stat); !ok || v < r.Min {
			out = append(out, r)
		}
	}
	return out
}

// Meets reports whether every requirement is satisfied.
func (s *Sheet) Meets(reqs []catalog.Requirement) bool {
	return len(s.Unmet(reqs)) == 0
}

// Clone returns a deep copy of s.
func (s *Sheet) Clone() *Sheet {
	return &Sheet{
		Attributes: cloneMap(s.Attributes),
		Skills:     cloneMap(s.Skills),
		Status:     cloneMap(s.Status),
		Effects:    cloneMap(s.Effects),
	}
}

func cloneMap(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
