package catalog

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks a catalog for structural correctness: required names,
// unique names, well-formed colors, finite angles and finite non-negative
// spreads. A category with
// no skills is allowed; it simply contributes nothing to the tree.
func Validate(cats []Category) []ValidationError {
	var errs []ValidationError

	seen := make(map[string]bool)
	for i, c := range cats {
		label := c.Name
		if label == "" {
			label = "#" + strconv.Itoa(i)
			errs = append(errs, ValidationError{
				Category: label,
				Field:    "name",
				Err:      fmt.Errorf("%w: name", ErrMissingField),
			})
		} else if seen[c.Name] {
			errs = append(errs, ValidationError{
				Category: label,
				Field:    "name",
				Err:      fmt.Errorf("%w: category %q", ErrDuplicateName, c.Name),
			})
		}
		seen[c.Name] = true

		if !hexColor.MatchString(c.Color) {
			errs = append(errs, ValidationError{
				Category: label,
				Field:    "color",
				Err:      fmt.Errorf("%w: %q", ErrBadColor, c.Color),
			})
		}
		if !finite(c.Angle) {
			errs = append(errs, ValidationError{
				Category: label,
				Field:    "angle",
				Err:      fmt.Errorf("%w: %g", ErrBadAngle, c.Angle),
			})
		}
		if c.Spread < 0 || !finite(c.Spread) {
			errs = append(errs, ValidationError{
				Category: label,
				Field:    "spread",
				Err:      fmt.Errorf("%w: %g", ErrBadSpread, c.Spread),
			})
		}

		errs = append(errs, validateSkills(label, c.Skills)...)
	}
	return errs
}

func validateSkills(category string, skills []Skill) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool)
	for i, s := range skills {
		label := s.Name
		if label == "" {
			label = "#" + strconv.Itoa(i)
			errs = append(errs, ValidationError{
				Category: category,
				Skill:    label,
				Field:    "name",
				Err:      fmt.Errorf("%w: name", ErrMissingField),
			})
		} else if seen[s.Name] {
			errs = append(errs, ValidationError{
				Category: category,
				Skill:    label,
				Field:    "name",
				Err:      fmt.Errorf("%w: skill %q", ErrDuplicateName, s.Name),
			})
		}
		seen[s.Name] = true

		if !hexColor.MatchString(s.Hex) {
			errs = append(errs, ValidationError{
				Category: category,
				Skill:    label,
				Field:    "hex",
				Err:      fmt.Errorf("%w: %q", ErrBadColor, s.Hex),
			})
		}
	}
	return errs
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
