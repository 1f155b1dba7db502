package crater

import "fmt"

// Category is the name of an outcome bucket in a crater report tree.
type Category string

const (
	CategoryFixed             Category = "fixed"
	CategoryTestPass          Category = "test-pass"
	CategorySpuriousFixed     Category = "spurious-fixed"
	CategoryBroken            Category = "broken"
	CategoryBuildFail         Category = "build-fail"
	CategoryError             Category = "error"
	CategoryRegressed         Category = "regressed"
	CategorySpuriousRegressed Category = "spurious-regressed"
	CategoryTestFail          Category = "test-fail"
	CategoryTestSkipped       Category = "test-skipped"
)

// AllCategories returns every recognized category.
func AllCategories() []Category {
	return []Category{
		CategoryFixed,
		CategoryTestPass,
		CategorySpuriousFixed,
		CategoryBroken,
		CategoryBuildFail,
		CategoryError,
		CategoryRegressed,
		CategorySpuriousRegressed,
		CategoryTestFail,
		CategoryTestSkipped,
	}
}

// ParseCategory converts a directory name into a Category.
// Unknown names return an *InvalidCategoryError.
func ParseCategory(name string) (Category, error) {
	c := Category(name)
	if _, err := c.Kind(); err != nil {
		return "", err
	}
	return c, nil
}

// IsSuccess reports whether crates in this category are recorded as Success
// without reading any report file.
func (c Category) IsSuccess() bool {
	switch c {
	case CategoryFixed, CategoryTestPass, CategorySpuriousFixed:
		return true
	default:
		return false
	}
}

// Kind returns the result kind crates in this category are classified as.
func (c Category) Kind() (Kind, error) {
	switch c {
	case CategoryFixed, CategoryTestPass, CategorySpuriousFixed:
		return KindSuccess, nil
	case CategoryBroken, CategoryBuildFail, CategoryError, CategoryRegressed, CategorySpuriousRegressed:
		return KindBuildFail, nil
	case CategoryTestFail:
		return KindTestFail, nil
	case CategoryTestSkipped:
		return KindTestSkipped, nil
	default:
		return "", &InvalidCategoryError{Name: string(c)}
	}
}

func (c Category) String() string {
	return string(c)
}

// InvalidCategoryError is returned for a category directory whose name is not
// one of the recognized categories.
type InvalidCategoryError struct {
	Name string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid directory type: %q", e.Name)
}

// Is lets errors.Is(err, ErrInvalidCategory) match any InvalidCategoryError.
func (e *InvalidCategoryError) Is(target error) bool {
	return target == ErrInvalidCategory
}
