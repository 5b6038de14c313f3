package client

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/pulselog/internal/localstore"
)

const (
	keyActivities = "activities"
	keyWellness   = "wellness"

	recentWellnessDays = 7
)

// localService drives the client-local store directly. It applies the same
// upsert-by-date and ordering rules as the served backend; the property
// tests for the two implementations are deliberately the same.
type localService struct {
	store *localstore.Store
	now   func() time.Time
}

func newLocalService(store *localstore.Store) *localService {
	return &localService{store: store, now: time.Now}
}

func (s *localService) ListActivities(ctx context.Context) ([]Activity, error) {
	activities, err := s.readActivities()
	if err != nil {
		return nil, err
	}

	// Newest first; the minute-resolution timestamp ties break on the
	// monotonically assigned ID.
	slices.SortFunc(activities, func(a, b Activity) int {
		if diff := cmp.Compare(b.Timestamp, a.Timestamp); diff != 0 {
			return diff
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return activities, nil
}

func (s *localService) CreateActivity(ctx context.Context, input ActivityInput) (*Activity, error) {
	var created Activity

	err := s.store.Update(keyActivities, func(current []byte) ([]byte, error) {
		activities, err := decodeActivities(current)
		if err != nil {
			return nil, err
		}

		now := s.now()
		created = Activity{
			ID:        nextActivityID(activities, now),
			Type:      input.Type,
			Duration:  input.Duration,
			Intensity: input.Intensity,
			Notes:     input.Notes,
			Timestamp: now.Format(timestampFormat),
		}
		activities = append(activities, created)
		return json.Marshal(activities)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &created, nil
}

func (s *localService) ListWellness(ctx context.Context) ([]Wellness, error) {
	entries, err := s.readWellness()
	if err != nil {
		return nil, err
	}

	// Most recent 7 distinct days, then reversed: the chart's x-axis has
	// to increase left to right.
	slices.SortFunc(entries, func(a, b Wellness) int {
		return cmp.Compare(b.Date, a.Date)
	})
	if len(entries) > recentWellnessDays {
		entries = entries[:recentWellnessDays]
	}
	slices.Reverse(entries)
	return entries, nil
}

func (s *localService) UpsertWellness(ctx context.Context, input WellnessInput) error {
	today := s.now().Format(dateFormat)

	err := s.store.Update(keyWellness, func(current []byte) ([]byte, error) {
		entries, err := decodeWellness(current)
		if err != nil {
			return nil, err
		}

		updated := false
		for i := range entries {
			if entries[i].Date == today {
				entries[i].EnergyLevel = input.EnergyLevel
				entries[i].SleepHours = input.SleepHours
				entries[i].MoodScore = input.MoodScore
				updated = true
				break
			}
		}
		if !updated {
			entries = append(entries, Wellness{
				ID:          nextWellnessID(entries),
				EnergyLevel: input.EnergyLevel,
				SleepHours:  input.SleepHours,
				MoodScore:   input.MoodScore,
				Date:        today,
			})
		}
		return json.Marshal(entries)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

func (s *localService) Close() error {
	return s.store.Close()
}

func (s *localService) readActivities() ([]Activity, error) {
	raw, err := s.store.Get(keyActivities)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	activities, err := decodeActivities(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return activities, nil
}

func (s *localService) readWellness() ([]Wellness, error) {
	raw, err := s.store.Get(keyWellness)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	entries, err := decodeWellness(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return entries, nil
}

func decodeActivities(raw []byte) ([]Activity, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var activities []Activity
	if err := json.Unmarshal(raw, &activities); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return activities, nil
}

func decodeWellness(raw []byte) ([]Wellness, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var entries []Wellness
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode wellness: %w", err)
	}
	return entries, nil
}

// nextActivityID derives an ID from the clock, bumping past any existing
// ID so a burst of writes within one millisecond still gets unique,
// strictly increasing values.
func nextActivityID(activities []Activity, now time.Time) int64 {
	id := now.UnixMilli()
	for _, activity := range activities {
		if activity.ID >= id {
			id = activity.ID + 1
		}
	}
	return id
}

func nextWellnessID(entries []Wellness) int64 {
	var id int64
	for _, entry := range entries {
		if entry.ID > id {
			id = entry.ID
		}
	}
	return id + 1
}
