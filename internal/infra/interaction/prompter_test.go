package interaction

import (
	"errors"
	"testing"
)

func TestHuhPrompterInputUsesRunner(t *testing.T) {
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })

	var gotTitle, gotPlaceholder string
	runInputPrompt = func(title, placeholder string, input *string) error {
		gotTitle = title
		gotPlaceholder = placeholder
		*input = "cloud.example.com"
		return nil
	}

	got, err := (HuhPrompter{}).Input("Cloud Director URL", "vcd.example.com")
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}
	if got != "cloud.example.com" {
		t.Fatalf("Input() = %q, want %q", got, "cloud.example.com")
	}
	if gotTitle != "Cloud Director URL" {
		t.Fatalf("title = %q", gotTitle)
	}
	if gotPlaceholder != "vcd.example.com" {
		t.Fatalf("placeholder = %q", gotPlaceholder)
	}
}

func TestHuhPrompterInputWrapsError(t *testing.T) {
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })
	runInputPrompt = func(string, string, *string) error {
		return errors.New("tty unavailable")
	}

	_, err := (HuhPrompter{}).Input("Color", "")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "prompt input: tty unavailable" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHuhPrompterPasswordUsesRunner(t *testing.T) {
	orig := runPasswordPrompt
	t.Cleanup(func() { runPasswordPrompt = orig })

	var gotTitle string
	runPasswordPrompt = func(title string, input *string) error {
		gotTitle = title
		*input = "s3cret"
		return nil
	}

	got, err := (HuhPrompter{}).Password("Password")
	if err != nil {
		t.Fatalf("Password() error = %v", err)
	}
	if got != "s3cret" {
		t.Fatalf("Password() = %q", got)
	}
	if gotTitle != "Password" {
		t.Fatalf("title = %q", gotTitle)
	}
}

func TestHuhPrompterPasswordWrapsError(t *testing.T) {
	orig := runPasswordPrompt
	t.Cleanup(func() { runPasswordPrompt = orig })
	runPasswordPrompt = func(string, *string) error {
		return errors.New("cancelled")
	}

	_, err := (HuhPrompter{}).Password("Password")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "prompt password: cancelled" {
		t.Fatalf("unexpected error: %v", err)
	}
}
