package utils

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance. validator.Validate caches
// struct metadata and is safe for concurrent use.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// CheckVar runs a single tag rule against a value and reports whether it passed.
func CheckVar(value any, tag string) bool {
	return Validator().Var(value, tag) == nil
}
