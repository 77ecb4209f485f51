package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/yanews/internal/moderation"
	"github.com/emilythestrangee/yanews/internal/views"
)

func TestValidateCommentForm(t *testing.T) {
	require.NoError(t, registerValidators())

	cases := []struct {
		name string
		text string
		want []string
	}{
		{"clean", "Хорошая новость", nil},
		{"empty", "", []string{msgRequired}},
		{"bad word", "Этот " + moderation.BadWords()[0] + " текст", []string{moderation.Warning}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := views.NewForm(nil)
			validate(&commentForm{Text: tc.text}, form)
			assert.Equal(t, tc.want, form.FieldErrors("text"))
		})
	}
}

func TestValidateSignupForm(t *testing.T) {
	require.NoError(t, registerValidators())

	form := views.NewForm(nil)
	validate(&signupForm{Username: "u", Password1: "abcdefgh1", Password2: "other"}, form)
	assert.Equal(t, []string{msgPasswordMatch}, form.FieldErrors("password2"))
	assert.Empty(t, form.FieldErrors("username"))

	form = views.NewForm(nil)
	validate(&signupForm{}, form)
	for _, field := range []string{"username", "password1", "password2"} {
		assert.Equal(t, []string{msgRequired}, form.FieldErrors(field), field)
	}
}

func TestSafeNext(t *testing.T) {
	cases := map[string]string{
		"":                     "/",
		"/news/1/":             "/news/1/",
		"/?page=2":             "/?page=2",
		"//evil.example":       "/",
		"/\\evil.example":      "/",
		"http://evil.example/": "/",
		"news/1/":              "/",
	}
	for in, want := range cases {
		assert.Equal(t, want, safeNext(in), in)
	}
}
