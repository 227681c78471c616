package zuul

import "fmt"

// ValidationError describes a single problem in a zuul_return payload.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// ValidateReturn checks a zuul_return payload before it is handed to the
// CI system, collecting every problem rather than stopping at the first.
func ValidateReturn(ret Return) []ValidationError {
	var errs []ValidationError

	if ret.Zuul.FileComments == nil {
		return []ValidationError{{"zuul.file_comments", "required"}}
	}
	for path, comments := range ret.Zuul.FileComments {
		if path == "" {
			errs = append(errs, ValidationError{"zuul.file_comments", "empty file path key"})
		}
		for i, c := range comments {
			prefix := fmt.Sprintf("zuul.file_comments[%q][%d]", path, i)
			if c.Line < 1 {
				errs = append(errs, ValidationError{prefix + ".line", "must be >= 1"})
			}
			if c.Message == "" {
				errs = append(errs, ValidationError{prefix + ".message", "required"})
			}
			if !c.Level.Valid() {
				errs = append(errs, ValidationError{prefix + ".level",
					fmt.Sprintf("must be error, warning, or info, got %q", c.Level)})
			}
		}
	}
	return errs
}
