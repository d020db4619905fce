package models

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{name: "diacritics stripped", input: "Ônibus Rodoviário", maxLen: 30, expected: "onibus-rodoviario"},
		{name: "punctuation collapsed", input: "O-500 / 6x2 (novo!)", maxLen: 30, expected: "o-500-6x2-novo"},
		{name: "leading trailing trimmed", input: "  ---Marcopolo---  ", maxLen: 30, expected: "marcopolo"},
		{name: "truncated without trailing separator", input: "um titulo bastante comprido para teste", maxLen: 10, expected: "um-titulo"},
		{name: "empty", input: "", maxLen: 30, expected: ""},
		{name: "only symbols", input: "!!!", maxLen: 30, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.input, tt.maxLen)
			if got != tt.expected {
				t.Errorf("Slugify(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
			if tt.maxLen > 0 && len(got) > tt.maxLen {
				t.Errorf("slug %q exceeds max length %d", got, tt.maxLen)
			}
		})
	}
}

func TestRemoveDiacritics(t *testing.T) {
	if got := RemoveDiacritics("ação é útil"); got != "acao e util" {
		t.Errorf("RemoveDiacritics = %q", got)
	}
}

func TestSupplierDisplayNameFallback(t *testing.T) {
	tests := []struct {
		name     string
		item     CatalogItem
		expected string
	}{
		{
			name:     "contact preferred",
			item:     CatalogItem{SupplierContactName: "João", SupplierCompanyName: "Empresa X"},
			expected: "João",
		},
		{
			name:     "falls back to company",
			item:     CatalogItem{SupplierCompanyName: "Empresa X"},
			expected: "Empresa X",
		},
		{
			name:     "blank contact falls back",
			item:     CatalogItem{SupplierContactName: "  ", SupplierCompanyName: "Empresa X"},
			expected: "Empresa X",
		},
		{name: "both empty", item: CatalogItem{}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.SupplierDisplayName(); got != tt.expected {
				t.Errorf("SupplierDisplayName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		city, state, expected string
	}{
		{"Curitiba", "PR", "Curitiba/PR"},
		{"Curitiba", "", "Curitiba"},
		{"", "PR", "PR"},
		{"", "", ""},
	}

	for _, tt := range tests {
		item := CatalogItem{City: tt.city, State: tt.state}
		if got := item.Location(); got != tt.expected {
			t.Errorf("Location(%q, %q) = %q, want %q", tt.city, tt.state, got, tt.expected)
		}
	}
}

func TestOptionalFlagAccessors(t *testing.T) {
	opts := Optionals{Bathroom: true, ReclinableSeats: true}

	if !opts.Flag("bathroom") {
		t.Error("Flag(bathroom) = false, want true")
	}
	if opts.Flag("fridge") {
		t.Error("Flag(fridge) = true, want false")
	}
	if opts.Flag("nonexistent") {
		t.Error("unknown key should be false")
	}

	labels := opts.EnabledLabels()
	if len(labels) != 2 {
		t.Fatalf("EnabledLabels = %v, want 2 entries", labels)
	}
	// Fixed order: bathroom comes before reclinable seats
	if labels[0] != "Banheiro" || labels[1] != "Poltronas reclináveis" {
		t.Errorf("EnabledLabels = %v, order/labels wrong", labels)
	}
}

func TestAllOptionalFlagsCount(t *testing.T) {
	flags := AllOptionalFlags()
	if len(flags) != 10 {
		t.Fatalf("len(AllOptionalFlags()) = %d, want 10", len(flags))
	}

	seen := map[string]bool{}
	for _, f := range flags {
		if seen[f.Key] {
			t.Errorf("duplicate flag key %q", f.Key)
		}
		seen[f.Key] = true
	}
}
