package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"golang.org/x/exp/slog"
)

func TestRunInteractive(t *testing.T) {
	svc, err := newService("", "reject", slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("newService returned error: %v", err)
	}

	in := strings.NewReader(strings.Join([]string{
		"1", "Дмитровская", "Бутырская", "",
		"2", "Окружная",
		"1", "Окружная", "1006", "",
		"1", "Окружная@10", "Братиславская", "Борисово, Орехово",
		"9",
		"exit",
	}, "\n") + "\n")
	var out bytes.Buffer
	if err := runInteractive(svc, in, &out); err != nil {
		t.Fatalf("runInteractive returned error: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"Total time: 690s",
		"1003  Окружная (line 10",
		"1402  Окружная (line 14",
		"Error: from: ambiguous station name",
		"Total time: 4270s",
		"Invalid choice",
		"Goodbye!",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output does not contain %q:\n%s", want, text)
		}
	}
}

func TestRunInteractiveStopsAtEndOfInput(t *testing.T) {
	svc, err := newService("", "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := runInteractive(svc, strings.NewReader("2\nНигде\n"), &out); err != nil {
		t.Fatalf("runInteractive returned error: %v", err)
	}
	if !strings.Contains(out.String(), `No station named "Нигде"`) {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestNewServiceRejectsUnknownPolicy(t *testing.T) {
	if _, err := newService("", "first-wins", slog.New(slog.NewTextHandler(io.Discard, nil))); err == nil {
		t.Error("expected error for unknown link policy")
	}
}
