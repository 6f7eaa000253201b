package cachestore

import "testing"

func TestKeys(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"collection", AllKey("character"), "character:all"},
		{"item", IDKey("character", 7), "character:7"},
		{"item negative id", IDKey("faction", -1), "faction:-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
