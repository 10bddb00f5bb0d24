package newsletter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"))
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubscribe(t *testing.T) {
	r := newRouter()

	w := post(r, `{"email":"dev@example.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully subscribed to newsletter")
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	r := newRouter()

	for _, body := range []string{`{"email":"plain-string"}`, `{"email":""}`, `{}`, `not json`} {
		w := post(r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body=%s", body)
		assert.Contains(t, w.Body.String(), "Valid email is required")
	}
}
