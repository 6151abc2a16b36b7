package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kousthubh02/Chillar/internal/service"
)

func TestIsDigits(t *testing.T) {
	t.Run("exact length digits pass", func(t *testing.T) {
		assert.True(t, isDigits("0000", 4))
		assert.True(t, isDigits("123456", 6))
	})

	t.Run("wrong length fails", func(t *testing.T) {
		assert.False(t, isDigits("123", 4))
		assert.False(t, isDigits("12345", 4))
		assert.False(t, isDigits("", 4))
	})

	t.Run("non-digits fail", func(t *testing.T) {
		assert.False(t, isDigits("12a4", 4))
		assert.False(t, isDigits(" 123", 4))
		assert.False(t, isDigits("١٢٣٤", 4))
	})
}

func TestBindingMessage(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		assert.Equal(t, "No data provided", bindingMessage(io.EOF))
	})

	t.Run("malformed JSON", func(t *testing.T) {
		assert.Equal(t, "Invalid request body", bindingMessage(errors.New("invalid character")))
	})

	t.Run("validation errors use JSON field names", func(t *testing.T) {
		err := validateStruct(ResetMPINRequest{Email: "a@b.co", NewMPin: "12"})
		require.Error(t, err)
		assert.Equal(t, "new_mPin must be exactly 4 digits", bindingMessage(err))

		err = validateStruct(SignupRequest{MPin: "1234"})
		require.Error(t, err)
		assert.Equal(t, "email is required", bindingMessage(err))
	})
}

func TestStatusFor(t *testing.T) {
	cases := map[service.Kind]int{
		service.KindBadRequest:      http.StatusBadRequest,
		service.KindUnauthorized:    http.StatusUnauthorized,
		service.KindNotFound:        http.StatusNotFound,
		service.KindConflict:        http.StatusConflict,
		service.KindTooManyRequests: http.StatusTooManyRequests,
		service.KindInternal:        http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, statusFor(kind), "kind %d", kind)
	}
}

func TestRespondError(t *testing.T) {
	t.Run("internal errors hide their cause", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		respondError(c, fmt.Errorf("db down"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"msg":"Internal server error"}`, w.Body.String())
	})
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def", "abc.def", true},
		{"bearer abc.def", "abc.def", true},
		{"Bearer   abc  ", "abc", true},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("header %q", tc.header), func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			if tc.header != "" {
				c.Request.Header.Set("Authorization", tc.header)
			}

			token, ok := bearerToken(c)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, token)
		})
	}
}

func TestParseID(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-3", "1.5", "99999999999999999999"} {
		t.Run("rejects "+raw, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Params = gin.Params{{Key: "id", Value: raw}}

			_, ok := parseID(c, "id")
			assert.False(t, ok)
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}

	t.Run("accepts a positive integer", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: "42"}}

		id, ok := parseID(c, "id")
		assert.True(t, ok)
		assert.Equal(t, int64(42), id)
	})
}
