// Package presentation scores how strongly an equipped set reads as feminine.
// Engine is pure: the same items, catalog and Context always produce the
// same Result.
package presentation

import (
	"math"
	"slices"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
)

// Engine evaluates equipped sets against a Config.
type Engine struct {
	cfg     Config
	catalog catalog.Getter
}

// NewEngine returns an engine over cat. A nil cat is allowed; every
// evaluation then yields the zero read.
func NewEngine(cfg Config, cat catalog.Getter) *Engine {
	return &Engine{cfg: cfg, catalog: cat}
}

// Config returns the scoring table.
func (e *Engine) Config() Config { return e.cfg }

// Catalog returns the item lookup the engine scores against.
func (e *Engine) Catalog() catalog.Getter { return e.catalog }

// worn is the resolved view of an equipped set.
type worn struct {
	items   []*catalog.ClothingItem
	bySlot  map[catalog.BodySlot]*catalog.ClothingItem
	visible map[string]bool
}

// resolve looks up the wearable items in equipped and applies coverage. A
// covering item hides whatever is equipped in each slot it lists, except
// itself. Coverage does not chain.
func (e *Engine) resolve(equipped []string) worn {
	w := worn{
		bySlot:  make(map[catalog.BodySlot]*catalog.ClothingItem),
		visible: make(map[string]bool),
	}
	if e.catalog == nil {
		return w
	}
	for _, id := range equipped {
		if id == "" {
			continue
		}
		item, ok := e.catalog.Get(id)
		if !ok {
			continue
		}
		c, ok := catalog.Wearable(item)
		if !ok {
			continue
		}
		w.items = append(w.items, c)
		w.bySlot[c.Slot] = c
		w.visible[c.ID] = true
	}
	for _, c := range w.items {
		for _, slot := range c.Covers {
			if hidden, ok := w.bySlot[slot]; ok && hidden.ID != c.ID {
				w.visible[hidden.ID] = false
			}
		}
	}
	return w
}

func (w worn) hasAny(slots []catalog.BodySlot) bool {
	for _, s := range slots {
		if _, ok := w.bySlot[s]; ok {
			return true
		}
	}
	return false
}

// contribution returns the points one visible item adds.
func (e *Engine) contribution(c *catalog.ClothingItem) float64 {
	switch c.Presentation.Intent {
	case catalog.IntentFeminine:
		slotW, ok := e.cfg.SlotWeights[c.Slot]
		if !ok {
			slotW = e.cfg.DefaultSlotWeight
		}
		typeW, ok := e.cfg.TypeWeights[c.Subtype]
		if !ok {
			typeW = e.cfg.DefaultTypeWeight
		}
		boost := 0.0
		for _, tag := range c.Tags {
			boost += e.cfg.TagBoosts[tag]
		}
		return math.Max(0, e.cfg.BaseUnit*slotW*typeW*(1+boost)+c.BaseAdjustment)
	case catalog.IntentUnisex:
		return c.BaseAdjustment
	}
	return 0
}

func (e *Engine) statDelta(s Stats) float64 {
	base := float64(e.cfg.StatBaseline)
	w := e.cfg.StatWeights
	return (float64(s.Beauty)-base)*w.Beauty +
		(float64(s.Confidence)-base)*w.Confidence +
		float64(s.Stress)*w.Stress +
		float64(s.Shame)*w.Shame
}

// Evaluate scores equipped under ctx. Unknown and unwearable IDs contribute
// nothing.
//
// Postcondition: 0 <= RawScore, Score <= MaxScore; 0 <= DisplayScore <= 100.
func (e *Engine) Evaluate(equipped []string, ctx Context) Result {
	if e.catalog == nil {
		return Result{ReadLabel: LabelMale, ReadAs: ReadMasculine}
	}
	w := e.resolve(equipped)
	sum := 0.0
	for _, c := range w.items {
		if w.visible[c.ID] {
			sum += e.contribution(c)
		}
	}
	raw := clamp(sum, 0, e.cfg.MaxScore)
	score := clamp(raw+e.statDelta(ctx.Stats), 0, e.cfg.MaxScore)
	exposed := ctx.Public && (!w.hasAny(e.cfg.TorsoSlots) || !w.hasAny(e.cfg.LegsSlots))
	return e.finish(raw, score, exposed)
}

func (e *Engine) finish(raw, score float64, exposed bool) Result {
	label := e.cfg.Tiers[len(e.cfg.Tiers)-1].Label
	for _, t := range e.cfg.Tiers {
		if score <= t.Max {
			label = t.Label
			break
		}
	}
	if exposed {
		label = LabelInappropriate
	}
	return Result{
		RawScore:        raw,
		Score:           score,
		DisplayScore:    int(math.Round(clamp(score/e.cfg.MaxScore*100, 0, 100))),
		ReadLabel:       label,
		ReadAs:          label.ReadAs(),
		PassChance:      clamp(sigmoid((score-e.cfg.Pass.Threshold)/e.cfg.Pass.Slope), 0, 1),
		IsExposedPublic: exposed,
		IsReadAsFemale:  label == LabelFemaleLeaning || label == LabelFemale,
	}
}

// Visible returns the IDs of equipped items that are not hidden by coverage,
// in input order.
func (e *Engine) Visible(equipped []string) []string {
	w := e.resolve(equipped)
	var out []string
	for _, c := range w.items {
		if w.visible[c.ID] && !slices.Contains(out, c.ID) {
			out = append(out, c.ID)
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
