package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorWritesEnvelopeAndAborts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	reached := false
	r.GET("/download/:format", func(c *gin.Context) {
		Error(c, http.StatusNotFound, CodeNotFound, "download not found", gin.H{"id": "dl-9"})
	}, func(c *gin.Context) { reached = true })

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/download/pdf", nil))

	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.False(t, reached)
	var payload ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, CodeNotFound, payload.Error.Code)
	assert.Equal(t, "download not found", payload.Error.Message)
	assert.Equal(t, map[string]any{"id": "dl-9"}, payload.Error.Details)
}
