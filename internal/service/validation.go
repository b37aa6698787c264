package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 错误字段使用 json 名称，和请求体保持一致
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// validateStruct 校验并转换为 ValidationError
func validateStruct(input interface{}) error {
	if err := validate.Struct(input); err != nil {
		return toValidationError(err)
	}
	return nil
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	result := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		if _, exists := result.Fields[fe.Field()]; exists {
			continue
		}
		result.Fields[fe.Field()] = fe.Tag()
	}
	return result
}
