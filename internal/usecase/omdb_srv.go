package usecase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"movielist/pkg/apperr"
	"movielist/pkg/utils"

	"go.uber.org/zap"
)

// OmdbService proxies search and detail lookups to the OMDb API so the
// API key never reaches clients. Responses are passed through as-is.
type OmdbService interface {
	Search(ctx context.Context, query string) ([]byte, error)
	Details(ctx context.Context, imdbID string) ([]byte, error)
}

type omdbService struct {
	config utils.OMDbConfig
	client *http.Client
	log    *zap.Logger
}

func NewOmdbService(config utils.OMDbConfig, log *zap.Logger) OmdbService {
	return &omdbService{
		config: config,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log.With(zap.String("service", "omdb")),
	}
}

func (s *omdbService) Search(ctx context.Context, query string) ([]byte, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperr.Invalid("search query is required")
	}
	return s.fetch(ctx, url.Values{"s": {query}})
}

func (s *omdbService) Details(ctx context.Context, imdbID string) ([]byte, error) {
	if strings.TrimSpace(imdbID) == "" {
		return nil, apperr.Invalid("imdb id is required")
	}
	return s.fetch(ctx, url.Values{"i": {imdbID}, "plot": {"full"}})
}

func (s *omdbService) fetch(ctx context.Context, params url.Values) ([]byte, error) {
	if s.config.APIKey == "" {
		return nil, apperr.Internal("omdb api key is not configured", nil)
	}

	params.Set("apikey", s.config.APIKey)
	endpoint := s.config.APIURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build omdb request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("OMDb request failed", zap.Error(err))
		return nil, apperr.Internal("omdb request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read omdb response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.log.Warn("OMDb returned non-OK status", zap.Int("status", resp.StatusCode))
		return nil, apperr.Internal(fmt.Sprintf("omdb returned status %d", resp.StatusCode), nil)
	}

	return body, nil
}
