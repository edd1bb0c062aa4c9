package localization

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"HealthyHabits/internal/apperrors"
)

// Cached memoizes successful translations for ttl. Failures are not cached.
func Cached(fn TranslateFunc, ttl time.Duration) TranslateFunc {
	c := cache.New(ttl, 2*ttl)
	return func(ctx context.Context, text string, target language.Tag) (string, error) {
		key := target.String() + "|" + text
		if v, found := c.Get(key); found {
			return v.(string), nil
		}
		out, err := fn(ctx, text, target)
		if err != nil {
			return "", err
		}
		c.SetDefault(key, out)
		return out, nil
	}
}

// Limited throttles calls to the provider.
func Limited(fn TranslateFunc, limiter *rate.Limiter) TranslateFunc {
	return func(ctx context.Context, text string, target language.Tag) (string, error) {
		if err := limiter.Wait(ctx); err != nil {
			return "", apperrors.NewTranslationUnavailableError("translation rate limit wait failed", target.String(), err)
		}
		return fn(ctx, text, target)
	}
}
