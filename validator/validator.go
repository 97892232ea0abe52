package validator

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"betenlace/errors"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator trả về instance dùng chung của validator/v10
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct validate struct theo tag `validate`, trả về AppError VALIDATION_ERROR
func ValidateStruct(v interface{}) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}
	return errors.NewAppError(errors.ErrCodeValidation, strings.Join(messages, "; "), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s không được để trống", fe.Namespace())
	case "oneof":
		return fmt.Sprintf("%s phải là một trong [%s]", fe.Namespace(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s phải có định dạng %s", fe.Namespace(), fe.Param())
	default:
		return fmt.Sprintf("%s không hợp lệ (%s)", fe.Namespace(), fe.Tag())
	}
}
