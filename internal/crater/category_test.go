package crater

import (
	"errors"
	"testing"
)

func TestParseCategory_AllRecognized(t *testing.T) {
	for _, c := range AllCategories() {
		t.Run(string(c), func(t *testing.T) {
			got, err := ParseCategory(string(c))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c {
				t.Errorf("ParseCategory(%q) = %q", c, got)
			}
		})
	}

	if len(AllCategories()) != 10 {
		t.Errorf("expected 10 categories, got %d", len(AllCategories()))
	}
}

func TestParseCategory_Invalid(t *testing.T) {
	tests := []string{"", "Fixed", "passed", "test_fail", "reg", " fixed"}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCategory(name)
			if err == nil {
				t.Fatal("expected error for invalid category")
			}
			if !errors.Is(err, ErrInvalidCategory) {
				t.Errorf("expected ErrInvalidCategory, got %v", err)
			}

			var invalid *InvalidCategoryError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected *InvalidCategoryError, got %T", err)
			}
			if invalid.Name != name {
				t.Errorf("Name = %q, want %q", invalid.Name, name)
			}
		})
	}
}

func TestCategory_Kind(t *testing.T) {
	tests := []struct {
		category Category
		kind     Kind
		success  bool
	}{
		{CategoryFixed, KindSuccess, true},
		{CategoryTestPass, KindSuccess, true},
		{CategorySpuriousFixed, KindSuccess, true},
		{CategoryBroken, KindBuildFail, false},
		{CategoryBuildFail, KindBuildFail, false},
		{CategoryError, KindBuildFail, false},
		{CategoryRegressed, KindBuildFail, false},
		{CategorySpuriousRegressed, KindBuildFail, false},
		{CategoryTestFail, KindTestFail, false},
		{CategoryTestSkipped, KindTestSkipped, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			kind, err := tt.category.Kind()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kind != tt.kind {
				t.Errorf("Kind() = %q, want %q", kind, tt.kind)
			}
			if tt.category.IsSuccess() != tt.success {
				t.Errorf("IsSuccess() = %v, want %v", tt.category.IsSuccess(), tt.success)
			}
		})
	}
}

func TestInvalidCategoryError_Message(t *testing.T) {
	err := &InvalidCategoryError{Name: "bogus"}
	if got := err.Error(); got != `invalid directory type: "bogus"` {
		t.Errorf("Error() = %q", got)
	}
}
