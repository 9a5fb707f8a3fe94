package utils

import "testing"

func TestIDGenerator_Generate(t *testing.T) {
	g := NewIDGenerator()

	id1 := g.Generate()
	id2 := g.Generate()

	if len(id1) != 24 {
		t.Errorf("expected 24 characters, got %d (%s)", len(id1), id1)
	}
	if !IsObjectID(id1) {
		t.Errorf("generated id %s is not a valid object id", id1)
	}
	if id1 == id2 {
		t.Error("expected unique identities")
	}
}

func TestIsObjectID(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"5f8d0d55b54764421b7156c9", true},
		{"5F8D0D55B54764421B7156C9", true},
		{"5f8d0d55b547", false},
		{"5f8d0d55b54764421b7156c9a", false},
		{"zf8d0d55b54764421b7156c9", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsObjectID(tt.input); got != tt.want {
				t.Errorf("IsObjectID(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
