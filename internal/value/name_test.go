package value

import (
	"errors"
	"testing"
)

func TestMakeName(t *testing.T) {
	valid := []string{"a", "_", "_private", "snake_case", "CamelCase", "a1", "__typename"}
	for _, s := range valid {
		if _, err := MakeName(s); err != nil {
			t.Errorf("MakeName(%q) failed: %v", s, err)
		}
	}

	invalid := []string{"", "1abc", "with-dash", "with space", "ünïcode", "dot.ted"}
	for _, s := range invalid {
		_, err := MakeName(s)
		if err == nil {
			t.Errorf("MakeName(%q) unexpectedly succeeded", s)
			continue
		}
		var ne *InvalidNameError
		if !errors.As(err, &ne) || ne.Text != s {
			t.Errorf("MakeName(%q) error %v, want InvalidNameError carrying input", s, err)
		}
	}
}
