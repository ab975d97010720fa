package code

import "testing"

func TestGenerateRandom(t *testing.T) {
	generated := GenerateRandom()
	if len(generated) != Length {
		t.Errorf("wrong length expected: %d got %d", Length, len(generated))
	}
	for _, letter := range generated {
		if letter < 'A' || letter > 'Z' {
			t.Errorf("letter %q is not an uppercase letter", letter)
		}
	}
}
