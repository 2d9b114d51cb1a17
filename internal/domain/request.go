package domain

// SplitType is a training-day arrangement strategy.
type SplitType string

const (
	SplitFullBody     SplitType = "fullbody"
	SplitUpperLower   SplitType = "upper_lower"
	SplitPushPullLegs SplitType = "push_pull_legs"
	SplitFrontBack    SplitType = "front_back"
)

// AllSplitTypes lists every recognized split type, in a stable order.
var AllSplitTypes = []SplitType{
	SplitFullBody,
	SplitUpperLower,
	SplitPushPullLegs,
	SplitFrontBack,
}

// IsValid reports whether s is one of the recognized split types.
func (s SplitType) IsValid() bool {
	switch s {
	case SplitFullBody, SplitUpperLower, SplitPushPullLegs, SplitFrontBack:
		return true
	}
	return false
}

// Preferences are the optional tuning knobs a user can send with a
// generation request. Stored verbatim on the persisted program.
type Preferences struct {
	Level            string   `bson:"level,omitempty" json:"level,omitempty"` // beginner/intermediate/advanced
	Goal             string   `bson:"goal,omitempty" json:"goal,omitempty"`   // strength/hypertrophy/endurance/general
	Equipment        []string `bson:"equipment,omitempty" json:"equipment,omitempty"`
	ExcludeExercises []string `bson:"excludeExercises,omitempty" json:"exclude_exercises,omitempty"`
	FocusMuscles     []string `bson:"focusMuscles,omitempty" json:"focus_muscles,omitempty"`
}

// GenerationRequest is the client input for one program generation attempt.
// Days and SplitType are mandatory and validated before any generator call.
type GenerationRequest struct {
	Days        int          `json:"days"`
	SplitType   SplitType    `json:"split_type"`
	Preferences *Preferences `json:"preferences,omitempty"`
}
