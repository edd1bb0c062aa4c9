package localization

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"HealthyHabits/internal/models"
	"HealthyHabits/internal/recommendation"
)

func sampleSet() models.RecommendationSet {
	return recommendation.Generate([]string{models.ConditionThyroid}, models.GoalWeightLoss)
}

func TestLocalize_EnglishPassesThrough(t *testing.T) {
	var calls atomic.Int32
	l := NewLocalizer(Available(func(context.Context, string, language.Tag) (string, error) {
		calls.Add(1)
		return "x", nil
	}), zap.NewNop())

	set := sampleSet()
	out := l.Localize(context.Background(), set, English)

	if calls.Load() != 0 {
		t.Fatalf("english output should not call the translator, got %d calls", calls.Load())
	}
	if out.Translated {
		t.Fatal("english output is not a translation")
	}
	for _, c := range models.Categories {
		if out.Text(c) != set.Get(c) {
			t.Fatalf("%s: expected original text", c)
		}
	}
	if out.Sections[0].Label != "Diet Suggestions" {
		t.Fatalf("unexpected label %q", out.Sections[0].Label)
	}
}

func TestLocalize_TranslationFailureFallsBack(t *testing.T) {
	l := NewLocalizer(Available(func(context.Context, string, language.Tag) (string, error) {
		return "", errors.New("service down")
	}), zap.NewNop())

	set := sampleSet()
	out := l.Localize(context.Background(), set, Hindi)

	if out.Translated {
		t.Fatal("failed translation reported as translated")
	}
	for _, c := range models.Categories {
		if got, want := out.Text(c), set.Get(c)+FailureSuffix; got != want {
			t.Fatalf("%s: expected %q, got %q", c, want, got)
		}
	}
}

func TestLocalize_UnavailableCapability(t *testing.T) {
	l := NewLocalizer(Unavailable("not configured"), zap.NewNop())
	set := sampleSet()
	out := l.Localize(context.Background(), set, Hindi)

	suffix := UnavailableSuffix(Hindi)
	if suffix != " (Hindi translation not available)" {
		t.Fatalf("unexpected suffix %q", suffix)
	}
	for _, c := range models.Categories {
		if got, want := out.Text(c), set.Get(c)+suffix; got != want {
			t.Fatalf("%s: expected %q, got %q", c, want, got)
		}
	}
	if out.Sections[0].Label != "आहार सुझाव" {
		t.Fatalf("expected hindi label, got %q", out.Sections[0].Label)
	}
	if l.Available() {
		t.Fatal("unavailable localizer reports available")
	}
}

func TestLocalize_Translates(t *testing.T) {
	l := NewLocalizer(Available(func(_ context.Context, text string, target language.Tag) (string, error) {
		return "[" + target.String() + "] " + text, nil
	}), zap.NewNop())

	set := sampleSet()
	out := l.Localize(context.Background(), set, Hindi)

	if !out.Translated {
		t.Fatal("expected a full translation")
	}
	if out.Language != "hi" {
		t.Fatalf("unexpected language %q", out.Language)
	}
	for i, c := range models.Categories {
		if out.Sections[i].Category != c {
			t.Fatalf("sections out of order at %d", i)
		}
		if got := out.Text(c); got != "[hi] "+set.Get(c) {
			t.Fatalf("%s: unexpected text %q", c, got)
		}
	}
}

func TestLocalize_PartialFailure(t *testing.T) {
	l := NewLocalizer(Available(func(_ context.Context, text string, _ language.Tag) (string, error) {
		if strings.Contains(text, "sleep schedule") {
			return "", errors.New("quota exceeded")
		}
		return "ok", nil
	}), zap.NewNop())

	set := sampleSet()
	out := l.Localize(context.Background(), set, Hindi)

	if out.Translated {
		t.Fatal("partial failure reported as translated")
	}
	if out.Text(models.CategorySleep) != set.Sleep+FailureSuffix {
		t.Fatalf("sleep block should fall back, got %q", out.Text(models.CategorySleep))
	}
	if out.Text(models.CategoryDiet) != "ok" {
		t.Fatalf("diet block should be translated, got %q", out.Text(models.CategoryDiet))
	}
}

func TestUnavailableCapabilityTranslateErrors(t *testing.T) {
	_, err := Unavailable("x").Translate(context.Background(), "hello", Hindi)
	if err == nil {
		t.Fatal("expected an error from the unavailable capability")
	}
}
