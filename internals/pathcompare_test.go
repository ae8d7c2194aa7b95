package internals

import "testing"

func TestComparePathComponents(t *testing.T) {
	tests := []struct {
		a, b []string
		want int
	}{
		{[]string{"a"}, []string{"a-b"}, -1},
		{[]string{"a", "b"}, []string{"a", "b"}, 0},
		{[]string{"a", "c"}, []string{"a", "b"}, 1},
		{[]string{"a"}, []string{"a", "b"}, -1},
		{nil, nil, 0},
	}
	for _, tt := range tests {
		if got := ComparePathComponents(tt.a, tt.b); got != tt.want {
			t.Errorf("ComparePathComponents(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestComparePathVectors(t *testing.T) {
	a := [][]string{{"x"}, {"y"}}
	b := [][]string{{"x"}, {"z"}}
	if ComparePathVectors(a, b) >= 0 {
		t.Error("expected a < b")
	}
	if ComparePathVectors(a, a) != 0 {
		t.Error("expected equal vectors to compare equal")
	}
}

func TestComparePathName(t *testing.T) {
	if ComparePathName([]string{"a"}, "x.txt", []string{"a"}, "y.txt") >= 0 {
		t.Error("expected x.txt < y.txt under equal parents")
	}
	if ComparePathName([]string{"a"}, "z.txt", []string{"b"}, "a.txt") >= 0 {
		t.Error("expected parent comparison to dominate name comparison")
	}
}
