package localization

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"HealthyHabits/internal/config"
	"HealthyHabits/internal/models"
)

// NewCapability picks the translation capability for the process. Any problem
// building the provider yields Unavailable rather than an error.
func NewCapability(ctx context.Context, cfg config.TranslationConfig, logger *zap.Logger) Capability {
	if cfg.Provider == config.ProviderNone {
		logger.Info("translation disabled")
		return Unavailable("disabled by configuration")
	}
	if !cfg.TranslationConfigured() {
		logger.Warn("translation provider has no credentials, translations unavailable",
			zap.String("provider", cfg.Provider))
		return Unavailable("missing credentials for " + cfg.Provider)
	}

	var fn TranslateFunc
	switch cfg.Provider {
	case config.ProviderGoogle:
		google, err := NewGoogleTranslator(ctx, cfg)
		if err != nil {
			logger.Warn("google translator init failed, translations unavailable", zap.Error(err))
			return Unavailable(err.Error())
		}
		fn = google
	case config.ProviderLibre:
		fn = NewLibreTranslator(cfg)
	default:
		return Unavailable("unknown provider " + cfg.Provider)
	}

	if cfg.RequestsPerSec > 0 {
		fn = Limited(fn, rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), len(models.Categories)))
	}
	if cfg.CacheTTL > 0 {
		fn = Cached(fn, cfg.CacheTTL)
	}

	logger.Info("translation available", zap.String("provider", cfg.Provider))
	return Available(fn)
}
