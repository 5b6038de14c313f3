package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/pulselog/internal/config"
	"github.com/pulselog/internal/localstore"
)

var (
	// ErrNetwork marks a served-backend failure: unreachable server or a
	// non-2xx response.
	ErrNetwork = errors.New("server request failed")
	// ErrStorage marks a local persistence failure.
	ErrStorage = errors.New("local storage fault")
)

// DataService is the single data interface the presentation depends on.
// Its four operations mirror the served API one to one, regardless of
// which backend is active.
type DataService interface {
	ListActivities(ctx context.Context) ([]Activity, error)
	CreateActivity(ctx context.Context, input ActivityInput) (*Activity, error)
	ListWellness(ctx context.Context) ([]Wellness, error)
	UpsertWellness(ctx context.Context, input WellnessInput) error
	Close() error
}

// New selects the backend once, for the lifetime of the process: a
// configured server URL means the served API, otherwise the local store.
// There is no runtime fallback between the two.
func New(cfg config.ClientConfig) (DataService, error) {
	if cfg.ServerURL != "" {
		return newRemoteService(cfg.ServerURL), nil
	}

	store, err := localstore.Open(cfg.LocalDBPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return newLocalService(store), nil
}
