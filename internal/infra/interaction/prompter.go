// Where: internal/infra/interaction/prompter.go
// What: Interactive input helpers using the huh library.
// Why: Provide keyboard-based prompts for credentials and branding inputs.
package interaction

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

var runInputPrompt = func(title, placeholder string, input *string) error {
	field := huh.NewInput().
		Title(title).
		Value(input)
	if placeholder != "" {
		field.Placeholder(placeholder)
	}
	return field.Run()
}

var runPasswordPrompt = func(title string, input *string) error {
	return huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(input).
		Run()
}

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title, placeholder string) (string, error) {
	var input string
	if err := runInputPrompt(title, placeholder, &input); err != nil {
		return "", fmt.Errorf("prompt input: %w", err)
	}
	return input, nil
}

func (p HuhPrompter) Password(title string) (string, error) {
	var input string
	if err := runPasswordPrompt(title, &input); err != nil {
		return "", fmt.Errorf("prompt password: %w", err)
	}
	return input, nil
}
