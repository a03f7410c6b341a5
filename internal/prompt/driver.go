// Package prompt asks for attribute values on the terminal. The Driver
// interface keeps command logic testable without a real terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/benetherington/anvil-runtime/pkg/schema"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")

// Question asks for one attribute. Default holds the attribute's current
// default value in its schema type; Options is set for enumerated attributes.
type Question struct {
	Attribute schema.Attribute
	Default   any
	Options   []string
	Validate  func(string) error
}

// Label is the prompt message: the attribute name and its type.
func (q Question) Label() string {
	return fmt.Sprintf("%s (%s)", q.Attribute.Name, q.Attribute.Type)
}

// DefaultText renders Default for a text prompt. Nil renders empty.
func (q Question) DefaultText() string {
	if q.Default == nil {
		return ""
	}
	return fmt.Sprint(q.Default)
}

// Driver answers attribute questions.
type Driver interface {
	// Text asks for a free-form value.
	Text(ctx context.Context, q Question) (string, error)
	// Confirm asks a boolean attribute.
	Confirm(ctx context.Context, q Question) (bool, error)
	// Choose picks one of q.Options.
	Choose(ctx context.Context, q Question) (string, error)
}

type surveyDriver struct{}

// NewSurveyDriver returns a Driver backed by github.com/AlecAivazis/survey.
func NewSurveyDriver() Driver {
	return surveyDriver{}
}

func (surveyDriver) Text(ctx context.Context, q Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	input := &survey.Input{
		Message: q.Label(),
		Help:    q.Attribute.Description,
		Default: q.DefaultText(),
	}
	var opts []survey.AskOpt
	if q.Validate != nil {
		validate := q.Validate
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			text, _ := ans.(string)
			return validate(text)
		}))
	}
	if err := survey.AskOne(input, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyDriver) Confirm(ctx context.Context, q Question) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	def, _ := q.Default.(bool)
	var out bool
	confirm := &survey.Confirm{
		Message: q.Label(),
		Help:    q.Attribute.Description,
		Default: def,
	}
	if err := survey.AskOne(confirm, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (surveyDriver) Choose(ctx context.Context, q Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(q.Options) == 0 {
		return "", fmt.Errorf("prompt: %s has no options", q.Attribute.Name)
	}
	var out string
	sel := &survey.Select{
		Message: q.Label(),
		Options: q.Options,
		Help:    q.Attribute.Description,
	}
	if text, ok := q.Default.(string); ok && contains(q.Options, text) {
		sel.Default = text
	}
	if err := survey.AskOne(sel, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
