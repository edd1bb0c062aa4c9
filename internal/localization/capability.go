package localization

import (
	"context"

	"golang.org/x/text/language"

	"HealthyHabits/internal/apperrors"
)

// TranslateFunc translates English text into the target language.
type TranslateFunc func(ctx context.Context, text string, target language.Tag) (string, error)

// Capability is the translation dependency. It is chosen once at startup and
// never re-detected per call.
type Capability interface {
	Available() bool
	Translate(ctx context.Context, text string, target language.Tag) (string, error)
}

type availableCapability struct {
	translate TranslateFunc
}

// Available wraps a working provider.
func Available(fn TranslateFunc) Capability {
	return availableCapability{translate: fn}
}

func (availableCapability) Available() bool { return true }

func (a availableCapability) Translate(ctx context.Context, text string, target language.Tag) (string, error) {
	return a.translate(ctx, text, target)
}

type unavailableCapability struct {
	reason string
}

// Unavailable is used when no provider is configured.
func Unavailable(reason string) Capability {
	return unavailableCapability{reason: reason}
}

func (unavailableCapability) Available() bool { return false }

func (u unavailableCapability) Translate(_ context.Context, _ string, target language.Tag) (string, error) {
	return "", apperrors.NewTranslationUnavailableError("translation is not configured: "+u.reason, target.String(), nil)
}
