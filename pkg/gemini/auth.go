package gemini

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"
)

// newHTTPClient returns the client for the configured auth mode. API key
// requests carry the key in the URL; the other modes attach OAuth tokens.
func newHTTPClient(ctx context.Context, cfg Config) (*http.Client, error) {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient, nil
	}

	switch {
	case cfg.APIKey != "":
		return &http.Client{Timeout: cfg.Timeout}, nil

	case cfg.CredentialsFile != "":
		client, _, err := htransport.NewClient(ctx,
			option.WithCredentialsFile(cfg.CredentialsFile),
			option.WithScopes(Scope),
		)
		if err != nil {
			return nil, fmt.Errorf("gemini: failed to load credentials file: %w", err)
		}
		client.Timeout = cfg.Timeout
		return client, nil

	default:
		creds, err := google.FindDefaultCredentials(ctx, Scope)
		if err != nil {
			return nil, fmt.Errorf("gemini: application default credentials: %w", err)
		}
		client := oauth2.NewClient(ctx, creds.TokenSource)
		client.Timeout = cfg.Timeout
		return client, nil
	}
}
