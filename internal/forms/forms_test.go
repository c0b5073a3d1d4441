package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTutorialInput_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		in := TutorialInput{Title: "T", Description: "D", Content: "C"}
		errs := in.Validate()
		assert.True(t, errs.Valid())
	})

	t.Run("Missing Fields", func(t *testing.T) {
		in := TutorialInput{}
		errs := in.Validate()
		assert.False(t, errs.Valid())
		assert.Contains(t, errs, "title")
		assert.Contains(t, errs, "description")
		assert.Contains(t, errs, "content")
	})

	t.Run("Whitespace Only", func(t *testing.T) {
		in := TutorialInput{Title: "  ", Description: "\t", Content: "ok"}
		errs := in.Validate()
		assert.Contains(t, errs, "title")
		assert.Contains(t, errs, "description")
		assert.NotContains(t, errs, "content")
	})

	t.Run("Title Too Long", func(t *testing.T) {
		in := TutorialInput{Title: strings.Repeat("x", 201), Description: "D", Content: "C"}
		errs := in.Validate()
		assert.Contains(t, errs, "title")
	})

	t.Run("Title Trimmed", func(t *testing.T) {
		in := TutorialInput{Title: " Hello ", Description: "D", Content: "C"}
		errs := in.Validate()
		assert.True(t, errs.Valid())
		assert.Equal(t, "Hello", in.Title)
	})
}

func TestArticleInput_Validate(t *testing.T) {
	t.Run("Valid Without Tags", func(t *testing.T) {
		in := ArticleInput{Title: "T", Content: "C"}
		assert.True(t, in.Validate().Valid())
	})

	t.Run("Missing Content", func(t *testing.T) {
		in := ArticleInput{Title: "T"}
		errs := in.Validate()
		assert.Contains(t, errs, "content")
	})
}

func TestSnippetInput_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		in := SnippetInput{Title: "T", Code: "print(1)", Language: "python"}
		assert.True(t, in.Validate().Valid())
	})

	t.Run("Bad Language", func(t *testing.T) {
		in := SnippetInput{Title: "T", Code: "x", Language: "rust"}
		errs := in.Validate()
		assert.Contains(t, errs, "language")
	})

	t.Run("Empty Language", func(t *testing.T) {
		in := SnippetInput{Title: "T", Code: "x"}
		errs := in.Validate()
		assert.Contains(t, errs, "language")
	})
}

func TestSignupInput_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		in := SignupInput{Username: "alice", Password: "secret1"}
		assert.True(t, in.Validate().Valid())
	})

	t.Run("Short Password", func(t *testing.T) {
		in := SignupInput{Username: "alice", Password: "abc"}
		errs := in.Validate()
		assert.Contains(t, errs, "password")
	})

	t.Run("Missing Username", func(t *testing.T) {
		in := SignupInput{Password: "secret1"}
		errs := in.Validate()
		assert.Contains(t, errs, "username")
	})
}
