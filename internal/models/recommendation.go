package models

// Category names one of the four advice blocks.
type Category string

const (
	CategoryDiet     Category = "diet"
	CategoryExercise Category = "exercise"
	CategorySleep    Category = "sleep"
	CategoryGeneral  Category = "general"
)

// Categories lists the blocks in display order.
var Categories = []Category{CategoryDiet, CategoryExercise, CategorySleep, CategoryGeneral}

// RecommendationSet is derived from a profile's conditions and goal. It is never stored.
type RecommendationSet struct {
	Diet     string `json:"diet"`
	Exercise string `json:"exercise"`
	Sleep    string `json:"sleep"`
	General  string `json:"general"`
}

func (r RecommendationSet) Get(c Category) string {
	switch c {
	case CategoryDiet:
		return r.Diet
	case CategoryExercise:
		return r.Exercise
	case CategorySleep:
		return r.Sleep
	case CategoryGeneral:
		return r.General
	}
	return ""
}

func (r *RecommendationSet) Set(c Category, text string) {
	switch c {
	case CategoryDiet:
		r.Diet = text
	case CategoryExercise:
		r.Exercise = text
	case CategorySleep:
		r.Sleep = text
	case CategoryGeneral:
		r.General = text
	}
}
