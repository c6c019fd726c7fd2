package presentation

import "math/rand/v2"

// ExposedText replaces the band quote while the public gate fails.
const ExposedText = "You can't go out like this. You're not properly dressed."

// Band holds the quotes for display scores in [Min, Max].
type Band struct {
	Min, Max int
	Quotes   []string
}

// Bands partition display scores 0-100.
var Bands = []Band{
	{0, 9, []string{
		"No one hesitates. You're read as a guy.",
		"You look plainly masculine. No ambiguity.",
		"Whatever you're wearing, it doesn't change how you're seen.",
	}},
	{10, 24, []string{
		"Still read as a guy, just… a little softer around the edges.",
		"Most people clock 'boy' at a glance.",
		"You don't pass as feminine, but you're not exactly 'typical' either.",
	}},
	{25, 39, []string{
		"People read you as a guy, then do a second take.",
		"You're still 'he' to strangers, but you're starting to draw looks.",
		"There's something about you that doesn't fit cleanly into 'just a guy.'",
	}},
	{40, 49, []string{
		"At a glance: boy. Up close: questions.",
		"You're in that tricky zone where people hesitate before deciding.",
		"Some strangers default to 'he,' but not confidently.",
	}},
	{50, 50, []string{
		"You could be read either way. People keep guessing wrong.",
		"You're right on the line. It depends on who's looking.",
		"Strangers stall for half a beat, searching for clues.",
	}},
	{51, 60, []string{
		"At a glance: maybe a girl. Up close: people start second-guessing.",
		"You're getting 'she?' from strangers more than you'd expect.",
		"People's eyes flick to details, trying to confirm what they think they saw.",
	}},
	{61, 75, []string{
		"Most people read you as a girl, until you speak or move wrong.",
		"Strangers default to 'she' without thinking.",
		"You're convincingly feminine in public… with the occasional close call.",
	}},
	{76, 89, []string{
		"You're read as a girl, confidently and consistently.",
		"People interact with you like you're unquestionably female.",
		"Even up close, most people don't doubt what they're seeing.",
	}},
	{90, 100, []string{
		"No one questions it. You're seen as a girl.",
		"You don't just pass. You set the tone.",
		"The world responds to you as female, full stop.",
	}},
}

const fallbackRead = "You're in an ambiguous state."

// ReadText picks a quote for displayScore. pick receives the number of quotes
// in the band and returns an index; nil picks at random.
func ReadText(displayScore int, pick func(n int) int) string {
	if pick == nil {
		pick = rand.IntN
	}
	for _, b := range Bands {
		if displayScore >= b.Min && displayScore <= b.Max {
			i := pick(len(b.Quotes))
			if i < 0 || i >= len(b.Quotes) {
				i = 0
			}
			return b.Quotes[i]
		}
	}
	return fallbackRead
}

// ResultText is ReadText for r, or ExposedText when r failed the public gate.
func ResultText(r Result, pick func(n int) int) string {
	if r.IsExposedPublic {
		return ExposedText
	}
	return ReadText(r.DisplayScore, pick)
}
