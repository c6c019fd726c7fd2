package presentation

import "github.com/cory-johannsen/paperdoll/internal/game/catalog"

// OutfitState classifies whether the character is dressed to go out.
type OutfitState string

// Outfit states.
const (
	OutfitInappropriate      OutfitState = "inappropriate"
	OutfitNeedsUnderwear     OutfitState = "needs_underwear"
	OutfitEmbarrassedBoth    OutfitState = "embarrassed_both"
	OutfitEmbarrassedBra     OutfitState = "embarrassed_bra"
	OutfitEmbarrassedPanties OutfitState = "embarrassed_panties"
	OutfitComfortable        OutfitState = "comfortable"
	OutfitDressed            OutfitState = "dressed"
)

var outfitComments = map[OutfitState]string{
	OutfitInappropriate:      "I can't go out like this. Everyone will see me!",
	OutfitNeedsUnderwear:     "I should wear some underwear before leaving...",
	OutfitEmbarrassedBoth:    "That's embarrassing, but at least no one can tell what I'm wearing underneath...",
	OutfitEmbarrassedBra:     "That's embarrassing, but at least no one can tell what I'm wearing underneath...",
	OutfitEmbarrassedPanties: "That's embarrassing, but at least no one can tell what I'm wearing underneath...",
	OutfitComfortable:        "Nice and comfy fit.",
	OutfitDressed:            "I'm properly dressed, at least.",
}

// OutfitDetails are the facts an OutfitAssessment was derived from.
type OutfitDetails struct {
	HasUpper             bool           `json:"hasUpper"`
	HasLower             bool           `json:"hasLower"`
	OuterwearIsMasculine bool           `json:"outerwearIsMasculine"`
	HasFemBra            bool           `json:"hasFemBra"`
	HasFemPanties        bool           `json:"hasFemPanties"`
	UnderUpperVisible    bool           `json:"underUpperVisible"`
	UnderLowerVisible    bool           `json:"underLowerVisible"`
	UnderUpperIntent     catalog.Intent `json:"underUpperIntent,omitempty"`
	UnderLowerIntent     catalog.Intent `json:"underLowerIntent,omitempty"`
}

// OutfitAssessment is the character's own comment on what they are wearing.
type OutfitAssessment struct {
	State   OutfitState   `json:"state"`
	Comment string        `json:"comment"`
	Details OutfitDetails `json:"details"`
}

// Outfit assesses equipped. A top is anything in upper or overUpper and a
// bottom anything in lower, covered or not; underwear counts as showing only
// when nothing covers it.
func (e *Engine) Outfit(equipped []string) OutfitAssessment {
	w := e.resolve(equipped)

	upper := w.bySlot[catalog.SlotUpper]
	if upper == nil {
		upper = w.bySlot[catalog.SlotOverUpper]
	}
	lower := w.bySlot[catalog.SlotLower]
	underUpper := w.bySlot[catalog.SlotUnderUpper]
	underLower := w.bySlot[catalog.SlotUnderLower]

	d := OutfitDetails{
		HasUpper:          upper != nil,
		HasLower:          lower != nil,
		UnderUpperVisible: underUpper != nil && w.visible[underUpper.ID],
		UnderLowerVisible: underLower != nil && w.visible[underLower.ID],
		UnderUpperIntent:  intentOf(underUpper),
		UnderLowerIntent:  intentOf(underLower),
	}
	d.HasFemBra = d.UnderUpperIntent == catalog.IntentFeminine
	d.HasFemPanties = d.UnderLowerIntent == catalog.IntentFeminine

	showing := (d.UnderUpperVisible && !d.HasUpper) || (d.UnderLowerVisible && !d.HasLower)
	if !d.HasUpper || !d.HasLower || showing {
		return assessment(OutfitInappropriate, d)
	}

	d.OuterwearIsMasculine = masculineOrNone(upper) && masculineOrNone(lower)
	switch {
	case underLower == nil:
		return assessment(OutfitNeedsUnderwear, d)
	case d.OuterwearIsMasculine && d.HasFemBra && d.HasFemPanties:
		return assessment(OutfitEmbarrassedBoth, d)
	case d.OuterwearIsMasculine && d.HasFemBra:
		return assessment(OutfitEmbarrassedBra, d)
	case d.OuterwearIsMasculine && d.HasFemPanties:
		return assessment(OutfitEmbarrassedPanties, d)
	case d.OuterwearIsMasculine:
		return assessment(OutfitComfortable, d)
	}
	return assessment(OutfitDressed, d)
}

func assessment(s OutfitState, d OutfitDetails) OutfitAssessment {
	return OutfitAssessment{State: s, Comment: outfitComments[s], Details: d}
}

func intentOf(c *catalog.ClothingItem) catalog.Intent {
	if c == nil {
		return ""
	}
	return c.Presentation.Intent
}

func masculineOrNone(c *catalog.ClothingItem) bool {
	i := intentOf(c)
	return i == "" || i == catalog.IntentMasculine
}
