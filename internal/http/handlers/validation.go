package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/neharvard/interactive-storytelling-server/internal/domain"
	"github.com/neharvard/interactive-storytelling-server/internal/http/response"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/objectid"
)

const tagObjectID = "objectid"

var registerOnce sync.Once
var registerErr error

// RegisterValidators installs the custom binding tags on gin's validator engine.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		registerErr = v.RegisterValidation(tagObjectID, func(fl validator.FieldLevel) bool {
			return objectid.IsValid(fl.Field().String())
		})
	})
	return registerErr
}

// bindJSON decodes and validates the request body, writing the error response
// itself when it returns false.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == tagObjectID {
				response.RespondServiceError(c, domain.ErrInvalidIdentifier)
				return false
			}
		}
		fe := verrs[0]
		response.RespondServiceError(c, fmt.Errorf("%w: %s failed %s", domain.ErrInvalidArgument, fe.Field(), fe.Tag()))
		return false
	}
	if errors.Is(err, io.EOF) {
		err = errors.New("request body is empty")
	}
	response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
	return false
}
