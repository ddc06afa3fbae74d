package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Assessment is the quality verdict the rewrite pipeline consumes.
type Assessment struct {
	Score    int      `json:"score" validate:"min=0,max=100"`
	Grade    string   `json:"grade,omitempty" validate:"omitempty,oneof=A B+ B C D"`
	Praise   []string `json:"praise"`
	Warnings []string `json:"warnings"`
	Failures []string `json:"failures"`
}

// Enrichment is extra praise and advice from an optional analysis source.
type Enrichment struct {
	Source      string   `json:"source"`
	Insights    []string `json:"insights"`
	Suggestions []string `json:"suggestions"`
}

var validate = validator.New()

// Validate checks the score range and grade label.
func (a Assessment) Validate() error {
	return validate.Struct(a)
}

// ValidationMessage renders the first validator failure as a short message.
func ValidationMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return fmt.Sprintf("validation error: %s - %s", errs[0].Field(), errs[0].Tag())
	}
	return "validation error: invalid request"
}

// Empty reports whether the enrichment carries nothing.
func (e *Enrichment) Empty() bool {
	return e == nil || (len(e.Insights) == 0 && len(e.Suggestions) == 0)
}
