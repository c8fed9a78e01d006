package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ShaadiBiodata/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return c, w
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "taxonomy error",
			err:      apperr.New(apperr.KindInvalidToken, "Invalid or expired token"),
			wantCode: http.StatusForbidden,
			wantBody: `{"error":"Invalid or expired token"}`,
		},
		{
			name:     "cause is hidden",
			err:      apperr.Wrap(apperr.New(apperr.KindExternalService, "Failed"), errors.New("secret upstream detail")),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed"}`,
		},
		{
			name:     "unknown error",
			err:      errors.New("database is locked"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal server error"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext("")
			respondError(c, tt.err)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestBindJSON(t *testing.T) {
	var req LoginRequest

	c, _ := newTestContext(`{"email":"a@example.com","password":"pw"}`)
	assert.True(t, bindJSON(c, &req))
	assert.Equal(t, LoginRequest{Email: "a@example.com", Password: "pw"}, req)

	c, _ = newTestContext("")
	assert.True(t, bindJSON(c, &LoginRequest{}))

	c, w := newTestContext(`{"email":`)
	assert.False(t, bindJSON(c, &LoginRequest{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request"}`, w.Body.String())
}
