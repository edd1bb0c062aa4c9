/**
* Name: 			localizer.go
* Description: 		추천 결과를 선택한 언어로 변환
* Workflow: 		영어는 그대로, 그 외 언어는 카테고리별 번역 -> 실패 시 원문 + 안내 문구
 */

package localization

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"HealthyHabits/internal/models"
)

// FailureSuffix is appended to the English text when a translation call fails.
const FailureSuffix = " (translation unavailable)"

// UnavailableSuffix is appended to the English text when no provider is configured.
func UnavailableSuffix(target language.Tag) string {
	return fmt.Sprintf(" (%s translation not available)", Name(target))
}

type Section struct {
	Category models.Category `json:"category"`
	Label    string          `json:"label"`
	Text     string          `json:"text"`
}

// Localized is a RecommendationSet ready for display.
type Localized struct {
	Language   string    `json:"language"`
	Translated bool      `json:"translated"`
	Sections   []Section `json:"sections"`
}

// Text returns the displayed text for a category.
func (l Localized) Text(c models.Category) string {
	for _, s := range l.Sections {
		if s.Category == c {
			return s.Text
		}
	}
	return ""
}

type Localizer struct {
	capability Capability
	logger     *zap.Logger
}

func NewLocalizer(capability Capability, logger *zap.Logger) *Localizer {
	return &Localizer{capability: capability, logger: logger}
}

func (l *Localizer) Available() bool {
	return l.capability.Available()
}

// Localize never fails: blocks that cannot be translated fall back to the
// English text plus a fixed suffix.
func (l *Localizer) Localize(ctx context.Context, set models.RecommendationSet, target language.Tag) Localized {
	out := Localized{
		Language: target.String(),
		Sections: make([]Section, len(models.Categories)),
	}
	for i, c := range models.Categories {
		out.Sections[i] = Section{Category: c, Label: Label(target, c), Text: set.Get(c)}
	}

	if target == English {
		return out
	}

	if !l.capability.Available() {
		suffix := UnavailableSuffix(target)
		for i := range out.Sections {
			out.Sections[i].Text += suffix
		}
		return out
	}

	translated := make([]bool, len(out.Sections))
	var g errgroup.Group
	for i := range out.Sections {
		g.Go(func() error {
			original := out.Sections[i].Text
			text, err := l.capability.Translate(ctx, original, target)
			if err != nil {
				l.logger.Warn("translation failed, using original text",
					zap.String("category", string(out.Sections[i].Category)),
					zap.String("language", target.String()),
					zap.Error(err))
				out.Sections[i].Text = original + FailureSuffix
				return nil
			}
			out.Sections[i].Text = text
			translated[i] = true
			return nil
		})
	}
	_ = g.Wait()

	out.Translated = true
	for _, ok := range translated {
		out.Translated = out.Translated && ok
	}
	return out
}
