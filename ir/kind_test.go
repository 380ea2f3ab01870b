package ir

import "testing"

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindDataSource, "data_source"},
		{KindVariable, "variable"},
		{KindReturn, "return"},
		{KindReference, "reference"},
		{KindFilter, "filter"},
		{KindProject, "project"},
		{KindJoin, "join"},
		{KindLimit, "limit"},
		{KindSort, "sort"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestKindFromString(t *testing.T) {
	tests := []struct {
		tag      string
		wantKind Kind
		wantOK   bool
	}{
		{"data_source", KindDataSource, true},
		{"variable", KindVariable, true},
		{"return", KindReturn, true},
		{"reference", KindReference, true},
		{"filter", KindFilter, true},
		{"project", KindProject, true},
		{"join", KindJoin, true},
		{"limit", KindLimit, true},
		{"sort", KindSort, true},
		{"bogus", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			gotKind, gotOK := KindFromString(tt.tag)
			if gotOK != tt.wantOK {
				t.Fatalf("KindFromString(%q) ok = %v; want %v", tt.tag, gotOK, tt.wantOK)
			}
			if gotOK && gotKind != tt.wantKind {
				t.Errorf("KindFromString(%q) = %v; want %v", tt.tag, gotKind, tt.wantKind)
			}
		})
	}
}

func TestKind_RoundTripsThroughString(t *testing.T) {
	kinds := []Kind{
		KindDataSource, KindVariable, KindReturn, KindReference,
		KindFilter, KindProject, KindJoin, KindLimit, KindSort,
	}
	for _, k := range kinds {
		tag := k.String()
		got, ok := KindFromString(tag)
		if !ok {
			t.Fatalf("KindFromString(%q) reported not ok", tag)
		}
		if got != k {
			t.Errorf("round trip %v -> %q -> %v", k, tag, got)
		}
	}
}

func TestKind_Category(t *testing.T) {
	tests := []struct {
		kind Kind
		want Category
	}{
		{KindDataSource, CategorySource},
		{KindReference, CategoryIntermediate},
		{KindVariable, CategoryTransforming},
		{KindReturn, CategoryTransforming},
		{KindFilter, CategoryTransforming},
		{KindProject, CategoryTransforming},
		{KindJoin, CategoryTransforming},
		{KindLimit, CategoryTransforming},
		{KindSort, CategoryTransforming},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Category(); got != tt.want {
				t.Errorf("Category() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestCategory_String(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategorySource, "source"},
		{CategoryTransforming, "transforming"},
		{CategoryIntermediate, "intermediate"},
		{Category(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.cat.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}
