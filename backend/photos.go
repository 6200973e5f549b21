package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

var errNoPhotoKey = errors.New("UNSPLASH_ACCESS_KEY not set")

// ========== Unsplash (proxy + cache) ==========
type photoService struct {
	accessKey   string
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	concurrency int

	mu    sync.Mutex
	cache map[string]string
}

func newPhotoService(cfg Config) *photoService {
	concurrency := cfg.PhotoConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	limit := rate.Inf
	if cfg.PhotoRPS > 0 {
		limit = rate.Limit(cfg.PhotoRPS)
	}
	return &photoService{
		accessKey:   cfg.UnsplashAccessKey,
		baseURL:     strings.TrimRight(cfg.UnsplashBaseURL, "/"),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		limiter:     rate.NewLimiter(limit, 1),
		concurrency: concurrency,
		cache:       make(map[string]string),
	}
}

// Lookup 回傳第一張符合 query 的圖片網址，找不到時回傳空字串
func (s *photoService) Lookup(ctx context.Context, query string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if key == "" {
		return "", nil
	}

	s.mu.Lock()
	if v, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return v, nil
	}
	s.mu.Unlock()

	if s.accessKey == "" {
		return "", errNoPhotoKey
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	api := fmt.Sprintf("%s/search/photos?query=%s&per_page=1", s.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unsplash returned %s", resp.Status)
	}

	var result struct {
		Results []struct {
			Urls map[string]string `json:"urls"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("invalid response from unsplash: %w", err)
	}

	photo := ""
	if len(result.Results) > 0 {
		photo = result.Results[0].Urls["regular"]
		if photo == "" {
			photo = result.Results[0].Urls["small"]
		}
	}
	if photo != "" {
		s.mu.Lock()
		s.cache[key] = photo
		s.mu.Unlock()
	}
	return photo, nil
}

// LookupAll 同時查多個地點，並發數由 concurrency 限制
func (s *photoService) LookupAll(ctx context.Context, places []string) (map[string]string, error) {
	urls := make([]string, len(places))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, place := range places {
		i, place := i, place
		g.Go(func() error {
			u, err := s.Lookup(gctx, place)
			if err != nil {
				return fmt.Errorf("photo for %q: %w", place, err)
			}
			urls[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(places))
	for i, place := range places {
		out[place] = urls[i]
	}
	return out, nil
}
