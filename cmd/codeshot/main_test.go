package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOutputNames(t *testing.T) {
	got, err := outputNames([]string{"a/main.go", "b/util.py", "README"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"main.png", "util.png", "README.png"}, got); diff != "" {
		t.Errorf("outputNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestOutputNamesCollision(t *testing.T) {
	tests := [][]string{
		{"a/main.go", "b/main.go"},
		{"main.go", "main.py"},
	}
	for _, inputs := range tests {
		_, err := outputNames(inputs)
		if err == nil {
			t.Errorf("outputNames(%q) error = nil, want collision", inputs)
			continue
		}
		if !strings.Contains(err.Error(), "main.png") {
			t.Errorf("outputNames(%q) error = %v, want it to name main.png", inputs, err)
		}
	}
}
