package cmd

import "testing"

func TestParseRemovalRange(t *testing.T) {
	cases := []struct {
		in       string
		min, max int
		wantErr  bool
	}{
		{"46", 46, 46, false},
		{" 30 ", 30, 30, false},
		{"40:50", 40, 50, false},
		{"40 : 50", 40, 50, false},
		{"50:40", 0, 0, true},
		{"abc", 0, 0, true},
		{"1:2:3", 0, 0, true},
	}

	for _, tc := range cases {
		min, max, err := parseRemovalRange(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseRemovalRange(%q) succeeded, want error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRemovalRange(%q) failed: %v", tc.in, err)
			continue
		}
		if min != tc.min || max != tc.max {
			t.Errorf("parseRemovalRange(%q) = (%d, %d), want (%d, %d)", tc.in, min, max, tc.min, tc.max)
		}
	}
}

func TestParseMove(t *testing.T) {
	row, col, val, err := parseMove([]string{"3", "7", "9"}, 3)
	if err != nil {
		t.Fatalf("parseMove failed: %v", err)
	}
	if row != 2 || col != 6 || val != 9 {
		t.Errorf("parseMove = (%d, %d, %d), want (2, 6, 9)", row, col, val)
	}

	if _, _, _, err := parseMove([]string{"3", "7"}, 3); err == nil {
		t.Error("parseMove with missing digit succeeded, want error")
	}
	if _, _, _, err := parseMove([]string{"3", "x"}, 2); err == nil {
		t.Error("parseMove with non-number succeeded, want error")
	}
}
