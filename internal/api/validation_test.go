package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Rating int    `json:"rating" validate:"gte=1,lte=5"`
	Link   string `json:"link" validate:"omitempty,http_url"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Email: "nope", Rating: 9, Link: "ftp://x"})

	require.Len(t, errs, 3)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "email must be a valid email address", errs[0].Message)
	assert.Equal(t, "rating", errs[1].Field)
	assert.Equal(t, "lte", errs[1].Tag)
	assert.Equal(t, "link", errs[2].Field)

	assert.Empty(t, ValidateStruct(sampleRequest{Email: "a@b.co", Rating: 3}))
}

func TestBindJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		body   string
		ok     bool
		status int
	}{
		{"valid", `{"email":"a@b.co","rating":4}`, true, http.StatusOK},
		{"malformed", `{"email":`, false, http.StatusBadRequest},
		{"invalid", `{"email":"a@b.co","rating":0}`, false, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req sampleRequest
			ok := BindJSON(c, &req)

			assert.Equal(t, tt.ok, ok)
			if !ok {
				assert.Equal(t, tt.status, w.Code)
			}
		})
	}
}
