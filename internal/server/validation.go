package server

import (
	"strings"
	"sync"

	"triviatime/internal/league"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validatorOnce sync.Once

func registerValidators() {
	validatorOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = engine.RegisterValidation("venuecode", func(fl validator.FieldLevel) bool {
			return validVenueCode(fl.Field().String())
		})
		_ = engine.RegisterValidation("shortdate", func(fl validator.FieldLevel) bool {
			_, err := league.ParseShortDate(fl.Field().String())
			return err == nil
		})
	})
}

// validVenueCode accepts three ASCII letters or digits.
func validVenueCode(code string) bool {
	code = strings.TrimSpace(code)
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
