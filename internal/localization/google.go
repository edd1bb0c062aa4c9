/**
* Name: 			google.go
* Description: 		Google Cloud Translation(v2) 연동
* Workflow: 		클라이언트 생성 -> 텍스트 번역 요청 -> 번역문 반환
 */

package localization

import (
	"context"
	"errors"

	"golang.org/x/text/language"
	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"

	"HealthyHabits/internal/apperrors"
	"HealthyHabits/internal/config"
)

// NewGoogleTranslator builds a TranslateFunc backed by Cloud Translation v2.
// An API key wins over a credentials file. Extra options are appended last.
func NewGoogleTranslator(ctx context.Context, cfg config.TranslationConfig, extra ...option.ClientOption) (TranslateFunc, error) {
	var opts []option.ClientOption
	switch {
	case cfg.GoogleAPIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.GoogleAPIKey))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	opts = append(opts, extra...)

	svc, err := translate.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.New("NewGoogleTranslator(): failed to create translate service: " + err.Error())
	}

	source := cfg.SourceLanguage
	timeout := cfg.Timeout

	return func(ctx context.Context, text string, target language.Tag) (string, error) {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		resp, err := svc.Translations.List([]string{text}, target.String()).
			Source(source).
			Format("text").
			Context(ctx).
			Do()
		if err != nil {
			return "", apperrors.NewTranslationUnavailableError("google translate request failed", target.String(), err)
		}
		if len(resp.Translations) == 0 {
			return "", apperrors.NewTranslationUnavailableError("google translate returned no translations", target.String(), nil)
		}
		return resp.Translations[0].TranslatedText, nil
	}, nil
}
