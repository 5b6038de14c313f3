package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// remoteService drives the served backend over its HTTP JSON API. It is a
// transparent pass-through: ordering and upsert semantics are enforced
// server-side.
type remoteService struct {
	baseURL string
	http    *http.Client
}

func newRemoteService(baseURL string) *remoteService {
	return &remoteService{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *remoteService) ListActivities(ctx context.Context) ([]Activity, error) {
	var activities []Activity
	if err := s.getJSON(ctx, "/api/activities", &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *remoteService) CreateActivity(ctx context.Context, input ActivityInput) (*Activity, error) {
	var created Activity
	if err := s.postJSON(ctx, "/api/activities", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *remoteService) ListWellness(ctx context.Context) ([]Wellness, error) {
	var entries []Wellness
	if err := s.getJSON(ctx, "/api/wellness", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *remoteService) UpsertWellness(ctx context.Context, input WellnessInput) error {
	return s.postJSON(ctx, "/api/wellness", input, nil)
}

func (s *remoteService) Close() error {
	return nil
}

func (s *remoteService) getJSON(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return s.do(req, dst)
}

func (s *remoteService) postJSON(ctx context.Context, path string, payload, dst any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return s.do(req, dst)
}

func (s *remoteService) do(req *http.Request, dst any) error {
	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: server returned %s", ErrNetwork, resp.Status)
	}

	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrNetwork, err)
	}
	return nil
}
