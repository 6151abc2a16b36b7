package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Kousthubh02/Chillar/internal/service"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerValidations(v)
	}
}

// registerValidations reports JSON field names in errors and adds the
// digits=N rule used for PINs and OTPs.
func registerValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return isDigits(fl.Field().String(), n)
	})
}

// isDigits reports whether s is exactly n ASCII digits
func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// bindJSON binds the request body and writes a 400 on failure
func bindJSON(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Msg: bindingMessage(err)})
		return false
	}
	return true
}

// bindingMessage turns a bind error into a client message
func bindingMessage(err error) string {
	if errors.Is(err, io.EOF) {
		return "No data provided"
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "digits":
		return fmt.Sprintf("%s must be exactly %s digits", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// statusFor maps service error kinds onto HTTP status codes
func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindBadRequest:
		return http.StatusBadRequest
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindConflict:
		return http.StatusConflict
	case service.KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"msg": ...}. Server errors are logged with their cause.
func respondError(c *gin.Context, err error) {
	status := statusFor(service.KindOf(err))
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	} else {
		slog.Debug("Request rejected", "path", c.FullPath(), "status", status, "error", err)
	}
	c.JSON(status, MessageResponse{Msg: service.MessageOf(err)})
}

// parseID reads an integer path parameter. Anything else is a 404, the
// same as an unmatched route.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, MessageResponse{Msg: "Not found"})
		return 0, false
	}
	return id, true
}

// bearerToken extracts the token from an Authorization header
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
