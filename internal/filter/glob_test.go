package filter

import "testing"

func TestGlobFilter_Match(t *testing.T) {
	tests := []struct {
		name    string
		exclude []string
		include []string
		module  string
		want    bool
	}{
		{
			name:    "no filters - include all",
			module:  "region-eu-central-1",
			want:    true,
		},
		{
			name:    "exact exclude match",
			exclude: []string{"region-eu-central-1"},
			module:  "region-eu-central-1",
			want:    false,
		},
		{
			name:    "wildcard exclude",
			exclude: []string{"legacy-*"},
			module:  "legacy-vpn",
			want:    false,
		},
		{
			name:    "wildcard exclude - non-match passes",
			exclude: []string{"legacy-*"},
			module:  "current-vpn",
			want:    true,
		},
		{
			name:    "include only matching",
			include: []string{"region-*"},
			module:  "other-module",
			want:    false,
		},
		{
			name:    "include only matching - matches",
			include: []string{"region-*"},
			module:  "region-eu-central-1",
			want:    true,
		},
		{
			name:    "exclude takes precedence",
			exclude: []string{"region-eu-*"},
			include: []string{"region-*"},
			module:  "region-eu-central-1",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewGlobFilter(tt.exclude, tt.include)
			if got := f.Match(tt.module); got != tt.want {
				t.Errorf("GlobFilter.Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGlobFilter_FilterNames(t *testing.T) {
	names := []string{"region-eu-central-1", "region-eu-north-1", "region-us-east-1", "legacy-vpn"}

	f := NewGlobFilter([]string{"region-eu-north-1", "legacy-*"}, nil)
	filtered := f.FilterNames(names)

	if len(filtered) != 2 {
		t.Errorf("expected 2 names after filter, got %d: %v", len(filtered), filtered)
	}
	for _, n := range filtered {
		if n == "region-eu-north-1" || n == "legacy-vpn" {
			t.Errorf("%s should have been excluded", n)
		}
	}
}

func TestDoubleStarGlob(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"region/**", "region/eu/central-1/vpc", true},
		{"region/**", "other/eu/central-1/vpc", false},
		{"**/vpc", "region/eu/central-1/vpc", true},
		{"**/vpc", "region/eu/central-1/eks", false},
		{"region/**/vpc", "region/eu/central-1/vpc", true},
		{"region/**/vpc", "region/vpc", true},
	}

	for _, tt := range tests {
		if got := matchGlob(tt.pattern, tt.path); got != tt.want {
			t.Errorf("matchGlob(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}
