// Package moderation rejects comment text that contains banned words.
package moderation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Tag is the validator tag that applies the banned word check to a string field.
const Tag = "nobadwords"

// Warning is shown to the user when a comment is rejected.
const Warning = "Не ругайтесь!"

var badWords = []string{
	"редиска",
	"негодяй",
}

// BadWords returns a copy of the banned word list.
func BadWords() []string {
	return append([]string(nil), badWords...)
}

// Contains reports whether text contains any banned word, ignoring case.
func Contains(text string) bool {
	lowered := strings.ToLower(text)
	for _, word := range badWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}

// Register installs the Tag validation on v.
func Register(v *validator.Validate) error {
	return v.RegisterValidation(Tag, func(fl validator.FieldLevel) bool {
		return !Contains(fl.Field().String())
	})
}
