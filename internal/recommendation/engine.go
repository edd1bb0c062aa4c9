/**
* Name: 			engine.go
* Description: 		규칙 테이블 기반 생활습관 추천 생성
* Workflow: 		기본 문장 -> 질환별 문장 -> 목표별 문장 -> 카테고리별 블록 조합
 */

package recommendation

import (
	"strings"

	"HealthyHabits/internal/models"
)

const bullet = "- "

// Generate maps a condition set and a goal to the four advice blocks.
// Unknown conditions and goals contribute nothing. The output depends only on
// which conditions are present, never on their order in the input.
func Generate(conditions []string, goal string) models.RecommendationSet {
	lines := collect(conditions, goal)

	var set models.RecommendationSet
	for _, c := range models.Categories {
		set.Set(c, Block(lines[c]))
	}
	return set
}

// Explain reports the names of the rules that fire for the given input, in
// application order. The goal rule, when present, is reported as "goal:<goal>".
func Explain(conditions []string, goal string) []string {
	present := toSet(conditions)
	fired := make([]string, 0, len(conditionRules)+1)
	for _, rule := range conditionRules {
		if rule.matches(present) {
			fired = append(fired, rule.Name)
		}
	}
	if _, ok := GoalRule(goal); ok {
		fired = append(fired, "goal:"+goal)
	}
	return fired
}

// Block renders lines as one bulleted text block, one line per bullet.
func Block(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(bullet + strings.Join(lines, "\n"+bullet))
}

func collect(conditions []string, goal string) map[models.Category][]string {
	out := make(map[models.Category][]string, len(models.Categories))
	add := func(ls []Line) {
		for _, l := range ls {
			out[l.Category] = append(out[l.Category], l.Text)
		}
	}

	add(baseline)

	present := toSet(conditions)
	for _, rule := range conditionRules {
		if rule.matches(present) {
			add(rule.Adds)
		}
	}

	if ls, ok := GoalRule(goal); ok {
		add(ls)
	}
	return out
}

func (r ConditionRule) matches(present map[string]struct{}) bool {
	for _, tag := range r.Tags {
		if _, ok := present[tag]; ok {
			return true
		}
	}
	return false
}

func toSet(conditions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(conditions))
	for _, c := range conditions {
		set[c] = struct{}{}
	}
	return set
}
