package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/notin-app/notin-service/pkg/code"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLangEngine(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	uni := ut.New(en.New(), en.New(), zh.New())

	r := gin.New()
	r.Use(Lang(uni))
	r.GET("/x", func(c *gin.Context) {
		*captured = c.GetString("lang")
		c.Status(http.StatusOK)
	})
	return r
}

func TestLangFromHeader(t *testing.T) {
	var got string
	r := newLangEngine(&got)

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("lang", "zh-CN")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "zh_cn", got)
}

func TestLangDefaultsToEnglish(t *testing.T) {
	var got string
	r := newLangEngine(&got)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/x", nil))
	assert.Equal(t, "en", got)

	req := httptest.NewRequest("GET", "/x?lang=fr", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "en", got)
}

func TestLangDoesNotMutateGlobalDefault(t *testing.T) {
	var got string
	r := newLangEngine(&got)

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("lang", "zh-CN")
	r.ServeHTTP(httptest.NewRecorder(), req)
	require.Equal(t, "zh_cn", got)

	assert.Equal(t, "en", code.GetGlobalDefaultLang())
	assert.Equal(t, "Note Save Failed", code.ErrorStorage.Msg())
}
