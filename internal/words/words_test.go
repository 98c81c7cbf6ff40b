package words

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

func TestNewFilters(t *testing.T) {
	l, err := New([]string{"Crane", "crane", " slate ", "toolong", "cr4ne", "ab", "trace"}, 5, game.QWERTY)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}
	for _, w := range []string{"crane", "CRANE", "slate", "trace"} {
		if !l.IsAnswer(w) {
			t.Errorf("IsAnswer(%q) = false", w)
		}
	}
	if l.IsAnswer("cr4ne") || l.IsAnswer("toolong") {
		t.Error("filtered words must not be answers")
	}
	if l.At(0) != "crane" || l.At(3) != "crane" || l.At(-1) != "trace" {
		t.Errorf("At wraps incorrectly: %q %q %q", l.At(0), l.At(3), l.At(-1))
	}
}

func TestNewEmpty(t *testing.T) {
	if _, err := New([]string{"abc"}, 5, game.QWERTY); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
}

func TestLoadEmbedded(t *testing.T) {
	l, err := Load("", 5, game.QWERTY)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Len() == 0 || l.WordLength() != 5 {
		t.Fatalf("Len=%d WordLength=%d", l.Len(), l.WordLength())
	}
	for i := 0; i < 20; i++ {
		if w := l.RandomAnswer(); !l.IsAnswer(w) {
			t.Fatalf("RandomAnswer returned %q", w)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.txt")
	if err := os.WriteFile(path, []byte("# comment\nfour\nfive\n\nSIXES\nnine\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := Load(path, 4, game.QWERTY)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt"), 5, game.QWERTY); err == nil {
		t.Fatal("Load of a missing file should fail")
	}
}
