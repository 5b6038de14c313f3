package localstore

import (
	"errors"
	"testing"
)

func TestGetAbsentKeyReturnsNil(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	value, err := s.Get("missing")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if value != nil {
		t.Fatalf("expected nil for absent key, got %q", value)
	}
}

func TestUpdateRoundTrip(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	if err := s.Update("activities", func(current []byte) ([]byte, error) {
		if current != nil {
			t.Fatalf("expected nil current on first update, got %q", current)
		}
		return []byte(`[1]`), nil
	}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if err := s.Update("activities", func(current []byte) ([]byte, error) {
		if string(current) != `[1]` {
			t.Fatalf("expected previous value, got %q", current)
		}
		return []byte(`[1,2]`), nil
	}); err != nil {
		t.Fatalf("second Update returned error: %v", err)
	}

	value, err := s.Get("activities")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(value) != `[1,2]` {
		t.Fatalf("unexpected stored value: %q", value)
	}
}

func TestUpdateErrorRollsBack(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	if err := s.Update("wellness", func([]byte) ([]byte, error) {
		return []byte(`["day"]`), nil
	}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	boom := errors.New("boom")
	if err := s.Update("wellness", func([]byte) ([]byte, error) {
		return nil, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected fn error to propagate, got %v", err)
	}

	value, err := s.Get("wellness")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(value) != `["day"]` {
		t.Fatalf("expected value untouched after rollback, got %q", value)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	if err := s.Update("activities", func([]byte) ([]byte, error) { return []byte(`[]`), nil }); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	value, err := s.Get("wellness")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if value != nil {
		t.Fatal("expected wellness key to be unaffected by activities writes")
	}
}
