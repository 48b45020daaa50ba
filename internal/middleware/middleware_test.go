package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDAndLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestID(), RequestLogger(zerolog.New(&buf)))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?x=1", nil))

	id := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Contains(t, buf.String(), `"requestID":"`+id+`"`)
	assert.Contains(t, buf.String(), `"path":"/ping?x=1"`)
	assert.Contains(t, buf.String(), `"status":200`)

	// A caller supplied id is echoed back
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

type sampleEntry struct {
	StudentID int64  `json:"student_id" binding:"required,gt=0"`
	Code      string `json:"subject_code" binding:"required"`
}

type sampleRequest struct {
	Entries []sampleEntry `json:"entries" binding:"required,dive"`
}

func TestBindingErrorMessage(t *testing.T) {
	SetupValidator()

	var req sampleRequest
	err := binding.JSON.BindBody([]byte(`{"entries":[{"student_id":1,"subject_code":"A"},{"student_id":-3}]}`), &req)
	require.Error(t, err)

	msg := BindingErrorMessage(err)
	assert.Equal(t, "entries[1].student_id must be greater than 0; entries[1].subject_code is required", msg)

	err = binding.JSON.BindBody([]byte(`{"entries":`), &req)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(BindingErrorMessage(err), "Invalid request format: "))
}
