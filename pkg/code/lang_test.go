package code

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMsgInSelectsLanguage(t *testing.T) {
	assert.Equal(t, "Note Save Failed", ErrorStorage.MsgIn("en"))
	assert.Equal(t, "笔记保存失败", ErrorStorage.MsgIn("zh_cn"))
}

func TestMsgInFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "Note Save Failed", ErrorStorage.MsgIn(""))
	assert.Equal(t, "Note Save Failed", ErrorStorage.MsgIn("fr"))
}

func TestMsgInLeavesDefaultLanguageUntouched(t *testing.T) {
	assert.Equal(t, "en", GetGlobalDefaultLang())

	_ = ErrorStorage.MsgIn("zh_cn")

	assert.Equal(t, "en", GetGlobalDefaultLang())
	assert.Equal(t, "Note Save Failed", ErrorStorage.Msg())
}
