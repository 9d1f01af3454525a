package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanitizedEcho(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeInputMiddleware())
	r.POST("/echo", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", body)
	})
	r.GET("/echo", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestSanitizeStripsMarkup(t *testing.T) {
	r := sanitizedEcho(t)
	body := `{"name":"<script>alert(1)</script>Acme","count":3}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Acme", out["name"])
	assert.Equal(t, float64(3), out["count"])
}

func TestSanitizeRejectsMalformedJSON(t *testing.T) {
	r := sanitizedEcho(t)
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSanitizeSkipsReads(t *testing.T) {
	r := sanitizedEcho(t)
	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
