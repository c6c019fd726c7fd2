package catalog

import "fmt"

// BodySlot identifies where on the body a clothing item sits.
type BodySlot string

// Body slots. At most one equipped item may occupy each.
const (
	SlotOverHead   BodySlot = "overHead"
	SlotHead       BodySlot = "head"
	SlotFace       BodySlot = "face"
	SlotNeck       BodySlot = "neck"
	SlotHands      BodySlot = "hands"
	SlotUpper      BodySlot = "upper"
	SlotOverUpper  BodySlot = "overUpper"
	SlotUnderUpper BodySlot = "underUpper"
	SlotLower      BodySlot = "lower"
	SlotUnderLower BodySlot = "underLower"
	SlotLegs       BodySlot = "legs"
	SlotThighs     BodySlot = "thighs"
	SlotFeet       BodySlot = "feet"
)

// BodySlots lists every valid body slot in declaration order.
var BodySlots = []BodySlot{
	SlotOverHead, SlotHead, SlotFace, SlotNeck, SlotHands,
	SlotUpper, SlotOverUpper, SlotUnderUpper,
	SlotLower, SlotUnderLower, SlotLegs, SlotThighs, SlotFeet,
}

var validSlots = func() map[BodySlot]bool {
	m := make(map[BodySlot]bool, len(BodySlots))
	for _, s := range BodySlots {
		m[s] = true
	}
	return m
}()

// Valid reports whether s is a known body slot.
func (s BodySlot) Valid() bool {
	return validSlots[s]
}

// ParseBodySlot converts raw to a BodySlot.
//
// Postcondition: returns an error iff raw is not a known slot.
func ParseBodySlot(raw string) (BodySlot, error) {
	s := BodySlot(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown body slot %q", raw)
	}
	return s, nil
}

// Category is the top-level item kind.
type Category string

// Item categories.
const (
	CategoryClothes Category = "clothes"
	CategoryUsable  Category = "usable"
	CategoryMisc    Category = "misc"
)

// Intent is the presentation intent of a clothing item.
type Intent string

// Presentation intents.
const (
	IntentMasculine Intent = "masculine"
	IntentFeminine  Intent = "feminine"
	IntentUnisex    Intent = "unisex"
)

var validIntents = map[Intent]bool{
	IntentMasculine: true,
	IntentFeminine:  true,
	IntentUnisex:    true,
}

// Modesty bounds.
const (
	MinModesty = 0
	MaxModesty = 5
)
