package service

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrCerealNotFound    = errors.New("cereal not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrCartItemForbidden = errors.New("cart item does not belong to this session")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrValidation        = errors.New("validation failed")
)

// ValidationError 字段级校验错误，key 为字段名，value 为未通过的规则
type ValidationError struct {
	Fields map[string]string
}

func newValidationError(field, rule string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: rule}}
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, ", ")
}

// Unwrap 使 errors.Is(err, ErrValidation) 成立
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
