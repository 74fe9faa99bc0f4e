package app

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/notin-app/notin-service/pkg/code"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToResponseRendersRequestLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("lang", "zh_cn")

	NewResponse(c).ToResponse(code.ErrorStorage)

	var res Res
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, code.ErrorStorage.Code(), res.Code)
	assert.Equal(t, "笔记保存失败", res.Message)
}

func TestToResponseDefaultsToEnglish(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NewResponse(c).ToResponse(code.ErrorStorage.WithDetails("disk full"))

	var res Res
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "Note Save Failed", res.Message)
	assert.Equal(t, "disk full", res.Details)
}
