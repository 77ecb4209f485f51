package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/emilythestrangee/yanews/internal/moderation"
	"github.com/emilythestrangee/yanews/internal/views"
)

const (
	msgRequired      = "Обязательное поле."
	msgInvalidForm   = "Некорректные данные формы."
	msgPasswordMatch = "Введенные пароли не совпадают."
	msgUsernameTaken = "Пользователь с таким именем уже существует."
	msgBadLogin      = "Пожалуйста, введите правильные имя пользователя и пароль."
)

type commentForm struct {
	Text string `form:"text" binding:"required,max=2000,nobadwords"`
}

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type signupForm struct {
	Username  string `form:"username" binding:"required,max=150"`
	Password1 string `form:"password1" binding:"required"`
	Password2 string `form:"password2" binding:"required,eqfield=Password1"`
}

var registerOnce struct {
	sync.Once
	err error
}

// registerValidators installs the moderation tag on gin's validator and makes
// validation errors report form field names.
func registerValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerOnce.err = errors.New("unexpected binding validator engine")
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		registerOnce.err = moderation.Register(v)
	})
	return registerOnce.err
}

// validate runs the binding tags of obj and copies failures onto form.
func validate(obj interface{}, form *views.Form) {
	err := binding.Validator.ValidateStruct(obj)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		form.AddError(views.NonField, msgInvalidForm)
		return
	}
	for _, fe := range verrs {
		form.AddError(fe.Field(), fieldMessage(fe))
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case moderation.Tag:
		return moderation.Warning
	case "eqfield":
		return msgPasswordMatch
	case "max":
		return fmt.Sprintf("Убедитесь, что это значение содержит не более %s символов.", fe.Param())
	default:
		return msgInvalidForm
	}
}
