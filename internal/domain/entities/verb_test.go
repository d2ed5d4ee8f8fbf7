package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerbForm(t *testing.T) {
	verb := &Verb{
		Dictionary: "食べる",
		Forms: map[FormKey]string{
			FormMasu:     "食べます",
			FormNegative: "食べない",
			FormTe:       "食べて",
		},
	}

	t.Run("dictionary resolves to the headword", func(t *testing.T) {
		form, ok := verb.Form(FormDictionary)
		assert.True(t, ok)
		assert.Equal(t, "食べる", form)
	})

	t.Run("defined form", func(t *testing.T) {
		form, ok := verb.Form(FormMasu)
		assert.True(t, ok)
		assert.Equal(t, "食べます", form)
	})

	t.Run("missing form", func(t *testing.T) {
		_, ok := verb.Form(FormPast)
		assert.False(t, ok)
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		verb.Forms[FormPast] = ""
		_, ok := verb.Form(FormPast)
		assert.False(t, ok)
	})
}

func TestVerbHasCoreForms(t *testing.T) {
	verb := &Verb{
		Dictionary: "飲む",
		Forms: map[FormKey]string{
			FormMasu:     "飲みます",
			FormNegative: "飲まない",
			FormTe:       "飲んで",
			FormPast:     "飲んだ",
		},
	}
	assert.True(t, verb.HasCoreForms())

	delete(verb.Forms, FormTe)
	assert.False(t, verb.HasCoreForms())
}
