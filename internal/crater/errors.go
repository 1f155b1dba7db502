package crater

import "errors"

var (
	// ErrReportDirMissing is returned when the report root cannot be listed.
	ErrReportDirMissing = errors.New("report directory not found")

	// ErrNotRegressionDir is returned when a category has no reg subdirectory.
	ErrNotRegressionDir = errors.New("regression type is not a directory")

	// ErrInvalidName is returned for category or crate names that are not valid UTF-8.
	ErrInvalidName = errors.New("name is invalid utf8")

	// ErrNoVersion is returned when a crate directory has no version entry.
	ErrNoVersion = errors.New("no version found")

	// ErrNotText is returned when a report file is not valid UTF-8.
	ErrNotText = errors.New("report is not valid utf8")

	// ErrInvalidCategory matches every *InvalidCategoryError.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrUnreachable signals a success category reaching the report-reading branch.
	ErrUnreachable = errors.New("internal error: success category reached report classification")
)
