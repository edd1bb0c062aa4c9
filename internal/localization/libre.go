package localization

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"HealthyHabits/internal/apperrors"
	"HealthyHabits/internal/config"
)

type libreRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// NewLibreTranslator talks to a LibreTranslate-compatible server (POST /translate).
func NewLibreTranslator(cfg config.TranslationConfig) TranslateFunc {
	endpoint := strings.TrimRight(cfg.LibreURL, "/") + "/translate"
	httpClient := &http.Client{Timeout: cfg.Timeout}

	return func(ctx context.Context, text string, target language.Tag) (string, error) {
		unavailable := func(msg string, cause error) error {
			return apperrors.NewTranslationUnavailableError(msg, target.String(), cause)
		}

		reqBody, err := json.Marshal(libreRequest{
			Q:      text,
			Source: cfg.SourceLanguage,
			Target: target.String(),
			Format: "text",
			APIKey: cfg.LibreAPIKey,
		})
		if err != nil {
			return "", unavailable("encode translate request", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
		if err != nil {
			return "", unavailable("build translate request", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := httpClient.Do(req)
		if err != nil {
			return "", unavailable("translate request failed", err)
		}
		defer resp.Body.Close()

		var out libreResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return "", unavailable("decode translate response", err)
		}
		if resp.StatusCode != http.StatusOK {
			return "", unavailable("translate server failed with status: "+resp.Status, errors.New(out.Error))
		}
		if out.TranslatedText == "" {
			return "", unavailable("translate server returned empty text", nil)
		}
		return out.TranslatedText, nil
	}
}
