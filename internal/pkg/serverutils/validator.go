package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and flattens the failures
// into a single 400 error message.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			parts := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
			}
			return BadRequest("Validation failed: " + strings.Join(parts, "; "))
		}
		return BadRequest("Validation failed")
	}
	return nil
}
