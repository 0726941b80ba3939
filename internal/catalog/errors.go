package catalog

import "errors"

// Sentinel errors for catalog loading and validation.
var (
	// ErrNoCatalog indicates the configured catalog file does not exist.
	ErrNoCatalog = errors.New("catalog file not found")
	// ErrInvalidCatalog indicates a catalog file parsed but failed validation.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrMissingField indicates a required field (e.g. name) is empty.
	ErrMissingField = errors.New("required field missing")
	// ErrDuplicateName indicates two categories, or two skills in one category, share a name.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrBadColor indicates a color that is not a #RRGGBB hex string.
	ErrBadColor = errors.New("color must be #RRGGBB")
	// ErrBadAngle indicates an angle that is NaN or infinite.
	ErrBadAngle = errors.New("angle must be a finite number")
	// ErrBadSpread indicates a negative, NaN or infinite angular spread.
	ErrBadSpread = errors.New("spread must be finite and not negative")
)

// ValidationError records a validation problem with its location in the catalog.
type ValidationError struct {
	Category string // category name, or "#<index>" when the name is empty
	Skill    string
	Field    string
	Err      error
}

// Error returns a human-readable string including the category and skill context.
func (e *ValidationError) Error() string {
	loc := "category " + e.Category
	if e.Skill != "" {
		loc += ": skill " + e.Skill
	}
	return loc + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
