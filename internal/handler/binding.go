package handler

import (
	"errors"
	"fmt"

	"travlr/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindingError translates a request-binding failure into a 400 response.
// Validation failures carry field-level messages; anything else (malformed
// JSON, bad numerics) gets a plain message.
func bindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		response.BadRequest(c, err.Error())
		return
	}

	fieldErrs := make([]response.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrs = append(fieldErrs, response.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	response.ValidationError(c, fieldErrs)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "tripcode":
		return "must be a valid trip code"
	case "e164":
		return "must be a phone number in E.164 format"
	default:
		return "is invalid"
	}
}
