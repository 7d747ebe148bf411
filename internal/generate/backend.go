// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/pdiddy/studyaids/pkg/types"
)

// ErrMissingAPIKey is returned when a Google-backed client is built
// without a credential.
var ErrMissingAPIKey = errors.New("GOOGLE_API_KEY is not set")

// NewBackend builds the client selected by cfg.Backend. The credential
// comes from cfg.APIKey; the caller resolves it.
func NewBackend(ctx context.Context, cfg types.GeneratorConfig, log *zap.Logger) (Backend, error) {
	if cfg.Backend.NeedsAPIKey() && cfg.APIKey == "" {
		return nil, types.ConfigurationError("create client", ErrMissingAPIKey)
	}

	client := &http.Client{}

	switch cfg.Backend {
	case "", types.BackendGemini:
		return &GeminiBackend{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			UserAgent:  cfg.UserAgent,
			MaxRetries: cfg.MaxRetries,
			Client:     client,
			Log:        log,
		}, nil
	case types.BackendLangchain:
		b, err := NewGoogleAIBackend(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, types.ConfigurationError("create client", err)
		}
		return b, nil
	case types.BackendOllama:
		b, err := NewOllamaBackend(cfg.BaseURL, cfg.Model, client)
		if err != nil {
			return nil, types.ConfigurationError("create client", err)
		}
		return b, nil
	}
	return nil, types.ConfigurationError("create client",
		fmt.Errorf("unknown generator backend %q: use %s, %s or %s",
			cfg.Backend, types.BackendGemini, types.BackendLangchain, types.BackendOllama))
}
