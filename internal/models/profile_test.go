package models

import (
	"errors"
	"reflect"
	"testing"

	"HealthyHabits/internal/apperrors"
)

func validInput() ProfileInput {
	return ProfileInput{
		Name:       "Asha",
		Age:        42,
		Gender:     "Female",
		Conditions: []string{ConditionThyroid},
		Goal:       GoalWeightLoss,
	}
}

func TestProfileInputValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProfileInput)
		field  string
	}{
		{"valid", func(*ProfileInput) {}, ""},
		{"empty conditions", func(in *ProfileInput) { in.Conditions = nil }, ""},
		{"empty name", func(in *ProfileInput) { in.Name = "" }, "name"},
		{"whitespace name", func(in *ProfileInput) { in.Name = "  \t " }, "name"},
		{"too young", func(in *ProfileInput) { in.Age = 11 }, "age"},
		{"too old", func(in *ProfileInput) { in.Age = 121 }, "age"},
		{"lower bound", func(in *ProfileInput) { in.Age = MinAge }, ""},
		{"upper bound", func(in *ProfileInput) { in.Age = MaxAge }, ""},
		{"bad gender", func(in *ProfileInput) { in.Gender = "Unknown" }, "gender"},
		{"bad condition", func(in *ProfileInput) { in.Conditions = []string{"Flu"} }, "conditions"},
		{"bad goal", func(in *ProfileInput) { in.Goal = "Run a marathon" }, "goal"},
		{"name reported first", func(in *ProfileInput) { in.Name = ""; in.Age = 0 }, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := in.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			var verr *apperrors.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Fatalf("expected field %q, got %q", tt.field, verr.Field)
			}
		})
	}
}

func TestConditionsRoundTrip(t *testing.T) {
	sets := [][]string{
		{},
		{ConditionNone},
		{ConditionThyroid, ConditionSleepApnea},
		{ConditionDiabetes, ConditionHeartRisk, ConditionObesity},
	}
	for _, set := range sets {
		got := SplitConditions(JoinConditions(set))
		if !reflect.DeepEqual(got, set) {
			t.Fatalf("round trip of %v gave %v", set, got)
		}
	}
}

func TestNormalizeConditionsDropsDuplicates(t *testing.T) {
	got := NormalizeConditions([]string{"Thyroid", " Thyroid", "", "Diabetes", "Thyroid"})
	want := []string{"Thyroid", "Diabetes"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplitConditionsEmptyColumn(t *testing.T) {
	if got := SplitConditions(""); len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
}

func TestRecommendationSetGetSet(t *testing.T) {
	var r RecommendationSet
	for _, c := range Categories {
		r.Set(c, string(c)+" text")
	}
	for _, c := range Categories {
		if r.Get(c) != string(c)+" text" {
			t.Fatalf("category %s not stored", c)
		}
	}
}
