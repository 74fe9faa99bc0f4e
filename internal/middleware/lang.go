package middleware

import (
	"strings"

	"github.com/notin-app/notin-service/pkg/code"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// Lang selects the response language from the lang query parameter or
// header and stores the matching validator translator in the context.
func Lang(uni *ut.UniversalTranslator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if s, exist := c.GetQuery("lang"); exist {
			lang = s
		} else if s = c.GetHeader("lang"); len(s) != 0 {
			lang = s
		}

		lang = strings.ToLower(strings.ReplaceAll(lang, "-", "_"))

		trans, found := uni.GetTranslator(lang)
		if found {
			c.Set("trans", trans)
		} else {
			trans, _ := uni.GetTranslator("en")
			c.Set("trans", trans)
		}

		// The response language stays on the request context so
		// concurrent requests cannot bleed into each other.
		supported := false
		for _, l := range code.GetSupportedLanguages() {
			if lang == l {
				supported = true
				break
			}
		}
		if !supported {
			lang = code.FALLBACK_LNG
		}
		c.Set("lang", lang)

		c.Next()
	}
}
