package errors

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/notin-app/notin-service/pkg/code"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c, w
}

func decodeAppError(t *testing.T, w *httptest.ResponseRecorder) AppError {
	t.Helper()
	var out AppError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestErrorResponseWithCodeValue(t *testing.T) {
	c, w := newTestContext(t)

	ErrorResponse(c, code.ErrorStorage.WithDetails("disk full"))

	out := decodeAppError(t, w)
	assert.Equal(t, code.ErrorStorage.Code(), out.Code)
	assert.Equal(t, "Note Save Failed", out.Message)
	assert.Equal(t, []string{"disk full"}, out.Details)
}

func TestErrorResponseUsesRequestLanguage(t *testing.T) {
	c, w := newTestContext(t)
	c.Set("lang", "zh_cn")

	ErrorResponse(c, code.ErrorStorage)

	out := decodeAppError(t, w)
	assert.Equal(t, "笔记保存失败", out.Message)
}

func TestErrorResponseUnknownErrorCarriesMessage(t *testing.T) {
	c, w := newTestContext(t)

	ErrorResponse(c, pkgerrors.New("connection reset"))

	out := decodeAppError(t, w)
	assert.Equal(t, 500, out.Code)
	assert.Equal(t, "Internal Server Error", out.Message)
	assert.Equal(t, []string{"connection reset"}, out.Details)
}
