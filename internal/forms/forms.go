// Package forms holds explicit input validation for the dashboard forms.
// Each Validate function returns a field -> message map; an empty map means
// the input is valid. Handlers re-render the form with the map on failure,
// nothing is persisted.
package forms

import (
	"strings"

	"github.com/aayushivora31/techblog/internal/models"
)

const maxTitleLength = 200

type FieldErrors map[string]string

func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

type TutorialInput struct {
	Title       string
	Description string
	Content     string
}

type ArticleInput struct {
	Title   string
	Content string
	Tags    string
}

type SnippetInput struct {
	Title    string
	Code     string
	Language string
}

type SignupInput struct {
	Username string
	Email    string
	Password string
}

func (in *TutorialInput) Validate() FieldErrors {
	errs := FieldErrors{}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		errs["title"] = "Title is required."
	} else if len(in.Title) > maxTitleLength {
		errs["title"] = "Title must be 200 characters or fewer."
	}
	if strings.TrimSpace(in.Description) == "" {
		errs["description"] = "Description is required."
	}
	if strings.TrimSpace(in.Content) == "" {
		errs["content"] = "Content is required."
	}
	return errs
}

func (in *ArticleInput) Validate() FieldErrors {
	errs := FieldErrors{}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		errs["title"] = "Title is required."
	} else if len(in.Title) > maxTitleLength {
		errs["title"] = "Title must be 200 characters or fewer."
	}
	if strings.TrimSpace(in.Content) == "" {
		errs["content"] = "Content is required."
	}
	return errs
}

func (in *SnippetInput) Validate() FieldErrors {
	errs := FieldErrors{}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		errs["title"] = "Title is required."
	} else if len(in.Title) > maxTitleLength {
		errs["title"] = "Title must be 200 characters or fewer."
	}
	if strings.TrimSpace(in.Code) == "" {
		errs["code"] = "Code is required."
	}
	if !models.IsValidSnippetLanguage(in.Language) {
		errs["language"] = "Language must be one of: " + strings.Join(models.SnippetLanguages, ", ") + "."
	}
	return errs
}

func (in *SignupInput) Validate() FieldErrors {
	errs := FieldErrors{}
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		errs["username"] = "Username is required."
	} else if len(in.Username) > 80 {
		errs["username"] = "Username must be 80 characters or fewer."
	}
	if len(in.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters."
	}
	return errs
}
