package app

import (
	"strings"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	val "github.com/go-playground/validator/v10"
)

type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) MapsToString() map[string]string {
	m := map[string]string{}
	for _, err := range v {
		m[err.Key] = err.Message
	}
	return m
}

// BindAndValid binds request parameters and translates validation errors
// with the translator the lang middleware put into the context.
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	var errs ValidErrors
	err := c.ShouldBind(v)
	if err == nil {
		return true, nil
	}

	verrs, ok := err.(val.ValidationErrors)
	if !ok {
		errs = append(errs, &ValidError{Key: "binding", Message: err.Error()})
		return false, errs
	}

	trans, exist := c.Get("trans")
	if !exist {
		for _, verr := range verrs {
			errs = append(errs, &ValidError{Key: verr.Field(), Message: verr.Error()})
		}
		return false, errs
	}

	translator := trans.(ut.Translator)
	for key, value := range verrs.Translate(translator) {
		errs = append(errs, &ValidError{
			Key:     key,
			Message: value,
		})
	}
	return false, errs
}
