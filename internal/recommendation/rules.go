package recommendation

import "HealthyHabits/internal/models"

// Line is one bullet added to one category.
type Line struct {
	Category models.Category
	Text     string
}

// ConditionRule fires once when any of its tags is in the condition set.
type ConditionRule struct {
	Name string
	Tags []string
	Adds []Line
}

var baseline = []Line{
	{models.CategoryDiet, "Include more whole foods: vegetables, fruits, lean proteins, and whole grains."},
	{models.CategoryExercise, "Aim for at least 30 minutes of moderate activity daily (walking, yoga, or cycling)."},
	{models.CategorySleep, "Keep consistent sleep schedule. Avoid screens 1 hour before bed."},
	{models.CategoryGeneral, "Stay hydrated and avoid excessive sugary drinks."},
}

// Applied in this order regardless of how the condition set was built.
var conditionRules = []ConditionRule{
	{
		Name: "thyroid",
		Tags: []string{models.ConditionThyroid},
		Adds: []Line{
			{models.CategoryDiet, "For thyroid issues: include selenium-rich foods (nuts, seeds) and iodine sources in moderation; avoid highly processed foods and excessive soy."},
			{models.CategoryExercise, "Include strength training twice a week to support metabolism."},
		},
	},
	{
		Name: "sleep_apnea",
		Tags: []string{models.ConditionSleepApnea},
		Adds: []Line{
			{models.CategoryDiet, "For sleep apnea: avoid heavy meals and caffeine close to bedtime; maintain healthy weight."},
			{models.CategoryExercise, "Practice breathing exercises and consider positional therapy (sleeping on side)."},
			{models.CategorySleep, "Consult a clinician for breathing-related sleep disorders; avoid alcohol near bedtime."},
		},
	},
	{
		Name: "heart",
		Tags: []string{models.ConditionHeartRisk, models.ConditionCardiacHistory},
		Adds: []Line{
			{models.CategoryDiet, "Heart-healthy diet: reduce saturated fats, increase fiber, include omega-3 sources like fish or flaxseed."},
			{models.CategoryExercise, "Prefer low-impact cardio like brisk walking; check with a doctor before intense exercise."},
			{models.CategoryGeneral, "Monitor blood pressure and cholesterol regularly."},
		},
	},
}

var goalRules = map[string][]Line{
	models.GoalWeightLoss: {
		{models.CategoryDiet, "Control portion sizes, prefer protein-rich breakfasts, and avoid late-night snacking."},
		{models.CategoryExercise, "Incorporate interval walks or brisk walks to increase calorie burn."},
	},
	models.GoalBetterSleep: {
		{models.CategorySleep, "Create a bedtime routine: warm shower, light stretching, and a calm environment."},
		{models.CategoryDiet, "Avoid heavy, spicy dinners and caffeine after late afternoon."},
	},
	models.GoalEnergyBoost: {
		{models.CategoryDiet, "Include small, frequent balanced meals; add nuts and fruits for healthy snacks."},
		{models.CategoryExercise, "Short morning walks and light stretching improve daytime alertness."},
	},
}

// Baseline returns a copy of the lines every recommendation starts with.
func Baseline() []Line {
	return append([]Line(nil), baseline...)
}

// ConditionRules returns a deep copy of the condition table in application order.
func ConditionRules() []ConditionRule {
	rules := make([]ConditionRule, len(conditionRules))
	for i, r := range conditionRules {
		rules[i] = ConditionRule{
			Name: r.Name,
			Tags: append([]string(nil), r.Tags...),
			Adds: append([]Line(nil), r.Adds...),
		}
	}
	return rules
}

// GoalRule returns a copy of the lines a goal adds, if the goal has any.
func GoalRule(goal string) ([]Line, bool) {
	lines, exists := goalRules[goal]
	if !exists {
		return nil, false
	}
	return append([]Line(nil), lines...), true
}
