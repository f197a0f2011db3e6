package usecase

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	n := NewTermNormalizer(false)

	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "removes weight quantity",
			raw:  "2 lbs bananas",
			want: "bananas",
		},
		{
			name: "removes volume quantity",
			raw:  "1 gallon whole milk",
			want: "whole milk",
		},
		{
			name: "removes fl oz quantity",
			raw:  "128 fl oz orange juice",
			want: "orange juice",
		},
		{
			name: "removes container count",
			raw:  "3 cans black beans",
			want: "black beans",
		},
		{
			name: "removes written-out quantity",
			raw:  "two avocados",
			want: "avocados",
		},
		{
			name: "removes dozen",
			raw:  "a dozen eggs",
			want: "eggs",
		},
		{
			name: "removes filler adjectives",
			raw:  "fresh large tomatoes",
			want: "tomatoes",
		},
		{
			name: "removes container nouns",
			raw:  "bag of shredded cheese",
			want: "shredded cheese",
		},
		{
			name: "removes loaf",
			raw:  "loaf of sourdough bread",
			want: "sourdough bread",
		},
		{
			name: "strips checkbox markup",
			raw:  "[ ] peanut butter",
			want: "peanut butter",
		},
		{
			name: "strips checked checkbox markup",
			raw:  "[x] peanut butter",
			want: "peanut butter",
		},
		{
			name: "strips bullet markup",
			raw:  "- greek yogurt",
			want: "greek yogurt",
		},
		{
			name: "strips numbered markup",
			raw:  "1. spaghetti",
			want: "spaghetti",
		},
		{
			name: "strips stacked markup",
			raw:  "- [ ] 2 lbs chicken breast",
			want: "chicken breast",
		},
		{
			name: "lowercases input",
			raw:  "Whole Milk",
			want: "whole milk",
		},
		{
			name: "removes bare numeric quantity",
			raw:  "2 bananas",
			want: "bananas",
		},
		{
			name: "falls back when stripping removes everything",
			raw:  "2 lbs",
			want: "2 lbs",
		},
		{
			name: "falls back for pure filler",
			raw:  "the large bag",
			want: "the large bag",
		},
		{
			name: "leaves clean terms alone",
			raw:  "shredded mozzarella",
			want: "shredded mozzarella",
		},
		{
			name: "collapses interior whitespace",
			raw:  "whole   wheat   bread",
			want: "whole wheat bread",
		},
		{
			name: "empty input stays empty",
			raw:  "",
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(tc.raw)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	n := NewTermNormalizer(false)

	inputs := []string{
		"2 lbs bananas",
		"fresh large tomatoes",
		"whole milk",
		"- [ ] 3 cans black beans",
		"shredded mozzarella",
	}

	for _, raw := range inputs {
		once := n.Normalize(raw)
		twice := n.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}

func TestNormalize_NeverEmpty(t *testing.T) {
	n := NewTermNormalizer(false)

	inputs := []string{
		"2 lbs",
		"one",
		"the",
		"a dozen",
		"12",
		"x",
	}

	for _, raw := range inputs {
		if got := n.Normalize(raw); got == "" {
			t.Errorf("Normalize(%q) returned empty string", raw)
		}
	}
}

func TestStripListMarkup(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"- milk", "milk"},
		{"* milk", "milk"},
		{"• milk", "milk"},
		{"[ ] milk", "milk"},
		{"[x] milk", "milk"},
		{"[X] milk", "milk"},
		{"3. milk", "milk"},
		{"3) milk", "milk"},
		{"- [ ] milk", "milk"},
		{"milk", "milk"},
		{"  milk  ", "milk"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got := StripListMarkup(tc.input)
			if got != tc.want {
				t.Errorf("StripListMarkup(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
