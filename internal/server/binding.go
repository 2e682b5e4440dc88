package server

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type bindMessages map[string]map[string]string

// bindForm binds the posted form into req. On failure it returns the message
// for the first failing field.
func bindForm(c *gin.Context, req any, messages bindMessages, fallback string) (string, bool) {
	if err := c.ShouldBind(req); err != nil {
		return resolveBindError(err, messages, fallback), false
	}
	return "", true
}

func resolveBindError(err error, messages bindMessages, fallback string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, verr := range verrs {
			if fieldMsgs, ok := messages[verr.Field()]; ok {
				if msg, ok := fieldMsgs[verr.Tag()]; ok {
					return msg
				}
			}
		}
	}
	if fallback != "" {
		return fallback
	}
	return "invalid request"
}
