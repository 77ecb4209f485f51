package moderation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"clean", "Отличная новость", false},
		{"empty", "", false},
		{"first word", "Этот " + BadWords()[0] + " текст", true},
		{"second word", "какой-то негодяй", true},
		{"substring", "редисками", true},
		{"upper case", "РЕДИСКА", true},
		{"mixed case", "НеГодяй!", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Contains(tc.text))
		})
	}
}

func TestBadWordsIsCopy(t *testing.T) {
	words := BadWords()
	words[0] = "changed"
	assert.NotEqual(t, "changed", BadWords()[0])
}

func TestRegister(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	type form struct {
		Text string `validate:"required,nobadwords"`
	}

	assert.NoError(t, v.Struct(form{Text: "хороший текст"}))

	err := v.Struct(form{Text: "ты редиска"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, Tag, verrs[0].Tag())
	assert.Equal(t, "Text", verrs[0].Field())
}
