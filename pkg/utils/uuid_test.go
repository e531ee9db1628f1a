package utils

import (
	"strings"
	"testing"
)

func TestNewItemID(t *testing.T) {
	id := NewItemID()
	if id == "" {
		t.Fatal("NewItemID returned an empty string")
	}
	parts := strings.Split(id, "-")
	if len(parts) != 2 {
		t.Errorf("Expected <time>-<random> format, got %q", id)
	}
}

func TestNewItemIDUniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewItemID()
		if _, dup := seen[id]; dup {
			t.Fatalf("Duplicate id generated: %q", id)
		}
		seen[id] = struct{}{}
	}
}
