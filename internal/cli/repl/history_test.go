package repl

import (
	"fmt"
	"testing"
)

func TestHistory(t *testing.T) {
	h := NewHistory(3)
	for _, line := range []string{"a", "b", "b", "c", "d"} {
		h.Add(line)
	}

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	if fmt.Sprint(h.Entries()) != "[b c d]" {
		t.Errorf("Entries() = %v", h.Entries())
	}
	if h.Get(0) != "d" || h.Get(2) != "b" {
		t.Errorf("Get() = %q, %q", h.Get(0), h.Get(2))
	}
	if h.Get(3) != "" || h.Get(-1) != "" {
		t.Error("out of range Get should be empty")
	}
}

func TestHistory_DefaultSize(t *testing.T) {
	h := NewHistory(0)
	for i := 0; i < DefaultHistorySize+5; i++ {
		h.Add(fmt.Sprint(i))
	}
	if h.Len() != DefaultHistorySize {
		t.Errorf("Len() = %d", h.Len())
	}
	if h.Get(0) != fmt.Sprint(DefaultHistorySize+4) {
		t.Errorf("Get(0) = %q", h.Get(0))
	}
}
