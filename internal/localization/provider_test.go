package localization

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"HealthyHabits/internal/apperrors"
	"HealthyHabits/internal/config"
)

func TestCached(t *testing.T) {
	var calls atomic.Int32
	fn := Cached(func(_ context.Context, text string, _ language.Tag) (string, error) {
		calls.Add(1)
		return "t:" + text, nil
	}, time.Minute)

	for i := 0; i < 3; i++ {
		got, err := fn(context.Background(), "hello", Hindi)
		if err != nil || got != "t:hello" {
			t.Fatalf("unexpected result %q, %v", got, err)
		}
	}
	if calls.Load() != 1 {
		t.Fatalf("expected 1 provider call, got %d", calls.Load())
	}
}

func TestCachedDoesNotCacheFailures(t *testing.T) {
	var calls atomic.Int32
	fn := Cached(func(context.Context, string, language.Tag) (string, error) {
		calls.Add(1)
		return "", errors.New("down")
	}, time.Minute)

	fn(context.Background(), "hello", Hindi)
	fn(context.Background(), "hello", Hindi)
	if calls.Load() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", calls.Load())
	}
}

func TestLimitedHonoursContext(t *testing.T) {
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	fn := Limited(func(context.Context, string, language.Tag) (string, error) {
		return "ok", nil
	}, limiter)

	if _, err := fn(context.Background(), "a", Hindi); err != nil {
		t.Fatalf("first call should pass, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := fn(ctx, "b", Hindi)
	var tu *apperrors.TranslationUnavailableError
	if !errors.As(err, &tu) {
		t.Fatalf("expected TranslationUnavailableError, got %v", err)
	}
}

func TestLibreTranslator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req libreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Target != "hi" || req.Source != "en" || req.APIKey != "secret" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(libreResponse{Error: "bad request"})
			return
		}
		json.NewEncoder(w).Encode(libreResponse{TranslatedText: "नमस्ते"})
	}))
	defer srv.Close()

	fn := NewLibreTranslator(config.TranslationConfig{
		SourceLanguage: "en",
		LibreURL:       srv.URL + "/",
		LibreAPIKey:    "secret",
		Timeout:        time.Second,
	})
	got, err := fn(context.Background(), "hello", Hindi)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got != "नमस्ते" {
		t.Fatalf("unexpected translation %q", got)
	}
}

func TestLibreTranslatorServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(libreResponse{Error: "boom"})
	}))
	defer srv.Close()

	fn := NewLibreTranslator(config.TranslationConfig{SourceLanguage: "en", LibreURL: srv.URL, Timeout: time.Second})
	_, err := fn(context.Background(), "hello", Hindi)
	var tu *apperrors.TranslationUnavailableError
	if !errors.As(err, &tu) {
		t.Fatalf("expected TranslationUnavailableError, got %v", err)
	}
	if tu.Language != "hi" {
		t.Fatalf("unexpected language %q", tu.Language)
	}
}

func TestGoogleTranslator(t *testing.T) {
	// Answers both with and without the v2 "data" envelope.
	body := `{"data":{"translations":[{"translatedText":"नमस्ते"}]},"translations":[{"translatedText":"नमस्ते"}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	fn, err := NewGoogleTranslator(context.Background(),
		config.TranslationConfig{GoogleAPIKey: "test-key", SourceLanguage: "en", Timeout: time.Second},
		option.WithEndpoint(srv.URL+"/language/translate/"),
	)
	if err != nil {
		t.Fatalf("unexpected init error %v", err)
	}
	got, err := fn(context.Background(), "hello", Hindi)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got != "नमस्ते" {
		t.Fatalf("unexpected translation %q", got)
	}
}

func TestGoogleTranslatorRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"Invalid Value"}}`))
	}))
	defer srv.Close()

	fn, err := NewGoogleTranslator(context.Background(),
		config.TranslationConfig{GoogleAPIKey: "test-key", SourceLanguage: "en", Timeout: time.Second},
		option.WithEndpoint(srv.URL+"/language/translate/"),
	)
	if err != nil {
		t.Fatalf("unexpected init error %v", err)
	}
	_, err = fn(context.Background(), "hello", Hindi)
	var tu *apperrors.TranslationUnavailableError
	if !errors.As(err, &tu) {
		t.Fatalf("expected TranslationUnavailableError, got %v", err)
	}
}

func TestNewCapability(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.TranslationConfig
		want bool
	}{
		{"disabled", config.TranslationConfig{Provider: config.ProviderNone}, false},
		{"google without credentials", config.TranslationConfig{Provider: config.ProviderGoogle}, false},
		{"libre without url", config.TranslationConfig{Provider: config.ProviderLibre}, false},
		{"libre", config.TranslationConfig{Provider: config.ProviderLibre, LibreURL: "http://localhost:5000", RequestsPerSec: 5, CacheTTL: time.Minute}, true},
		{"google with key", config.TranslationConfig{Provider: config.ProviderGoogle, GoogleAPIKey: "k"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCapability(context.Background(), tt.cfg, zap.NewNop())
			if got.Available() != tt.want {
				t.Fatalf("expected available=%v, got %v", tt.want, got.Available())
			}
		})
	}
}
