package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/eventclima/eventclima/internal/climate"
)

func TestHistoryLogMostRecentFirst(t *testing.T) {
	l := NewHistoryLog()
	l.Append(climate.HistoryEntry{ID: "a"})
	l.Append(climate.HistoryEntry{ID: "b"})
	l.Append(climate.HistoryEntry{ID: "c"})

	all := l.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	for i, want := range []string{"c", "b", "a"} {
		if all[i].ID != want {
			t.Errorf("position %d: expected %q, got %q", i, want, all[i].ID)
		}
	}
	if l.Len() != 3 {
		t.Errorf("expected Len 3, got %d", l.Len())
	}
}

func TestHistoryLogAllReturnsCopy(t *testing.T) {
	l := NewHistoryLog()
	l.Append(climate.HistoryEntry{ID: "original"})

	first := l.All()
	first[0].ID = "mutated"

	second := l.All()
	if second[0].ID != "original" {
		t.Error("All returned a reference into the log instead of a copy")
	}
}

func TestHistoryLogEmpty(t *testing.T) {
	l := NewHistoryLog()
	if got := l.All(); len(got) != 0 {
		t.Errorf("expected empty history, got %d entries", len(got))
	}
}

func TestHistoryLogConcurrentAppends(t *testing.T) {
	l := NewHistoryLog()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Append(climate.HistoryEntry{ID: fmt.Sprintf("entry-%d", i)})
		}(i)
	}
	wg.Wait()

	if l.Len() != 50 {
		t.Errorf("expected 50 entries after concurrent appends, got %d", l.Len())
	}
}
