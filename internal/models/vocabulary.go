package models

const (
	ConditionThyroid        = "Thyroid"
	ConditionSleepApnea     = "Sleep Apnea"
	ConditionHeartRisk      = "Heart Risk"
	ConditionCardiacHistory = "Cardiac History"
	ConditionObesity        = "Obesity"
	ConditionDiabetes       = "Diabetes"
	ConditionNone           = "None"

	GoalWeightLoss    = "Weight Loss"
	GoalBetterSleep   = "Better Sleep"
	GoalEnergyBoost   = "Energy Boost"
	GoalHealthyHabits = "Healthy Habits"
)

// Form vocabularies, in display order.
var (
	Genders = []string{"Female", "Male", "Other"}

	Conditions = []string{
		ConditionThyroid,
		ConditionSleepApnea,
		ConditionHeartRisk,
		ConditionObesity,
		ConditionDiabetes,
		ConditionNone,
	}

	Goals = []string{
		GoalWeightLoss,
		GoalBetterSleep,
		GoalEnergyBoost,
		GoalHealthyHabits,
	}
)

// Vocabulary is served to clients so they can build the profile form.
type Vocabulary struct {
	Genders    []string       `json:"genders"`
	Conditions []string       `json:"conditions"`
	Goals      []string       `json:"goals"`
	Languages  []LanguageInfo `json:"languages"`
	MinAge     int            `json:"min_age"`
	MaxAge     int            `json:"max_age"`
}

type LanguageInfo struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
