package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func runPrompter(t *testing.T, input string) (Choice, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(input), &out, 0)
	prompt := samplePrompt()
	prompt.Default = 0
	return p.Select(ctx, prompt)
}

func TestPrompter_SelectAfterMove(t *testing.T) {
	choice, err := runPrompter(t, "j\r")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if !choice.Selected || choice.Index != 1 {
		t.Fatalf("expected row 1 selected, got %+v", choice)
	}
}

func TestPrompter_SelectDefault(t *testing.T) {
	choice, err := runPrompter(t, "\r")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if !choice.Selected || choice.Index != 0 {
		t.Fatalf("expected row 0 selected, got %+v", choice)
	}
}

func TestPrompter_BackIsNotSelection(t *testing.T) {
	choice, err := runPrompter(t, "q")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if choice.Selected {
		t.Fatalf("expected no selection, got %+v", choice)
	}
}

func TestPrompter_CtrlCInterrupts(t *testing.T) {
	_, err := runPrompter(t, "\x03")
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
}
