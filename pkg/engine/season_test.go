package engine

import "testing"

func TestSeasonLabel(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{2022, "2021-22"},
		{2000, "1999-00"},
		{2005, "2004-05"},
		{1905, "1904-05"},
		{1999, "1998-99"},
		{2100, "2099-00"},
		{1, "0-01"},
	}
	for _, tt := range tests {
		if got := SeasonLabel(tt.year); got != tt.want {
			t.Errorf("SeasonLabel(%d) = %q; want %q", tt.year, got, tt.want)
		}
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  int
		found bool
	}{
		{"plain year", "top scorers 2022", 2022, true},
		{"first of two years wins", "compare 1999 and 2010 stats", 1999, true},
		{"nineteenth century ignored", "stats from 1850", 0, false},
		{"no year", "what about rebounds", 0, false},
		{"year inside sentence", "how did he do in 2016 exactly", 2016, true},
		{"five digit number ignored", "code 20225 is not a year", 0, false},
		{"year at boundary", "2020", 2020, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractYear(tt.text)
			if found != tt.found || got != tt.want {
				t.Errorf("ExtractYear(%q) = (%d, %v); want (%d, %v)", tt.text, got, found, tt.want, tt.found)
			}
		})
	}
}
