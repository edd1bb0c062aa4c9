package models

import (
	"fmt"
	"strings"
	"time"

	"HealthyHabits/internal/apperrors"
)

const (
	MinAge = 12
	MaxAge = 120

	conditionSeparator = ","
)

// 저장된 가족 구성원 건강 프로필
type Profile struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Gender     string    `json:"gender"`
	Conditions []string  `json:"conditions"`
	Goal       string    `json:"goal"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProfileInput is what the form submits. It becomes a Profile once the store
// assigns an id and a timestamp.
type ProfileInput struct {
	Name       string   `json:"name" example:"Asha Verma"`
	Age        int      `json:"age" example:"42"`
	Gender     string   `json:"gender" example:"Female"`
	Conditions []string `json:"conditions" example:"Thyroid,Sleep Apnea"`
	Goal       string   `json:"goal" example:"Better Sleep"`
}

// Validate checks the input against the form vocabulary. The name check runs
// first so an empty name is always reported as such.
func (in ProfileInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperrors.NewValidationError("Please enter a name.", "name", in.Name)
	}
	if in.Age < MinAge || in.Age > MaxAge {
		return apperrors.NewValidationError(
			fmt.Sprintf("Age must be between %d and %d.", MinAge, MaxAge), "age", in.Age)
	}
	if !contains(Genders, in.Gender) {
		return apperrors.NewValidationError(
			fmt.Sprintf("Gender must be one of: %s.", strings.Join(Genders, ", ")), "gender", in.Gender)
	}
	for _, c := range in.Conditions {
		if !contains(Conditions, c) {
			return apperrors.NewValidationError(
				fmt.Sprintf("Unknown health condition %q.", c), "conditions", c)
		}
	}
	if !contains(Goals, in.Goal) {
		return apperrors.NewValidationError(
			fmt.Sprintf("Goal must be one of: %s.", strings.Join(Goals, ", ")), "goal", in.Goal)
	}
	return nil
}

// NormalizeConditions collapses duplicates and keeps first-seen order.
func NormalizeConditions(conditions []string) []string {
	out := make([]string, 0, len(conditions))
	seen := make(map[string]struct{}, len(conditions))
	for _, c := range conditions {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// JoinConditions encodes a condition set for the conditions column.
func JoinConditions(conditions []string) string {
	return strings.Join(NormalizeConditions(conditions), conditionSeparator)
}

// SplitConditions decodes the conditions column. An empty column is an empty set.
func SplitConditions(column string) []string {
	if strings.TrimSpace(column) == "" {
		return []string{}
	}
	return NormalizeConditions(strings.Split(column, conditionSeparator))
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
