package shape

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewEngine(t *testing.T) {
	e, err := NewEngine([][]byte{goregular.TTF})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if e == nil {
		t.Fatal("NewEngine returned nil engine")
	}
}

func TestNewEngineBadPayload(t *testing.T) {
	if _, err := NewEngine([][]byte{[]byte("not a font")}); err == nil {
		t.Error("NewEngine with garbage payload succeeded, want error")
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine([][]byte{goregular.TTF})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e.(*Engine)
}
