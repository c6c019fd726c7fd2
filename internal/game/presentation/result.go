package presentation

// Label is the tiered read of a presentation score.
type Label string

// Labels from least to most feminine. LabelInappropriate overrides the tier
// when the public gate fails.
const (
	LabelMale          Label = "male"
	LabelSoftMale      Label = "soft-male"
	LabelAndrogynous   Label = "androgynous"
	LabelFemaleLeaning Label = "female-leaning"
	LabelFemale        Label = "female"
	LabelInappropriate Label = "inappropriate"
)

func (l Label) valid() bool {
	switch l {
	case LabelMale, LabelSoftMale, LabelAndrogynous, LabelFemaleLeaning, LabelFemale, LabelInappropriate:
		return true
	}
	return false
}

// ReadAs is the coarse four-way read derived from a Label.
type ReadAs string

// Coarse reads.
const (
	ReadMasculine   ReadAs = "masculine"
	ReadAndrogynous ReadAs = "androgynous"
	ReadFeminine    ReadAs = "feminine"
	ReadPassing     ReadAs = "passing"
)

// ReadAs maps l onto the coarse read.
func (l Label) ReadAs() ReadAs {
	switch l {
	case LabelAndrogynous:
		return ReadAndrogynous
	case LabelFemaleLeaning:
		return ReadFeminine
	case LabelFemale:
		return ReadPassing
	}
	return ReadMasculine
}

// Stats are the character values that shift the score.
type Stats struct {
	Beauty     int `json:"beauty"`
	Confidence int `json:"confidence"`
	Stress     int `json:"stress"`
	Shame      int `json:"shame"`
}

// Context is everything besides the equipped items that an evaluation depends on.
type Context struct {
	Public bool  `json:"public"`
	Stats  Stats `json:"stats"`
}

// Result is one evaluation. It is derived data and never persisted.
type Result struct {
	// RawScore is the clamped equipment sum before stats.
	RawScore float64 `json:"rawScore"`
	// Score is RawScore shifted by stats, clamped to [0, MaxScore].
	Score           float64 `json:"score"`
	DisplayScore    int     `json:"displayScore"`
	ReadLabel       Label   `json:"readLabel"`
	ReadAs          ReadAs  `json:"readAs"`
	PassChance      float64 `json:"passChance"`
	IsExposedPublic bool    `json:"isExposedPublic"`
	IsReadAsFemale  bool    `json:"isReadAsFemale"`
}
