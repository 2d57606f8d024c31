package invoicer

import "testing"

func TestSlugID(t *testing.T) {
	tests := []struct {
		company, name string
		want          string
	}{
		{"Acme Corporation", "Acme Corporation", "acme_corporation"},
		{"", "John's Shop & Sons", "john_s_shop_sons"},
		{"TechStart Solutions", "ignored", "techstart_solutions"},
		{"  Global  Dynamics  ", "", "global_dynamics"},
		{"ABC-123", "", "abc_123"},
	}
	for _, tt := range tests {
		if got := SlugID(tt.company, tt.name); got != tt.want {
			t.Errorf("SlugID(%q, %q) = %q, want %q", tt.company, tt.name, got, tt.want)
		}
	}
}

func TestDefaultClientCode(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Acme Corporation", "ACM"},
		{"TechStart", "TEC"},
		{"xy", "XY"},
		{"3M Company", "3MC"},
	}
	for _, tt := range tests {
		if got := DefaultClientCode(tt.name); got != tt.want {
			t.Errorf("DefaultClientCode(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
