package assets

import (
	"strings"
	"testing"
)

func TestAnswersList(t *testing.T) {
	words, err := AnswersList()
	if err != nil {
		t.Fatalf("AnswersList: %v", err)
	}
	if len(words) == 0 {
		t.Fatal("embedded answers should not be empty")
	}
	for _, w := range words {
		if strings.HasPrefix(w, "#") || w != strings.ToLower(w) || strings.TrimSpace(w) != w {
			t.Errorf("unexpected entry %q", w)
		}
	}
}

func TestMigrations(t *testing.T) {
	ms, err := Migrations()
	if err != nil {
		t.Fatalf("Migrations: %v", err)
	}
	if len(ms) == 0 {
		t.Fatal("expected at least one migration")
	}
	for i := 1; i < len(ms); i++ {
		if ms[i-1].Name >= ms[i].Name {
			t.Errorf("migrations out of order: %s, %s", ms[i-1].Name, ms[i].Name)
		}
	}
	if !strings.Contains(ms[0].SQL, "CREATE TABLE IF NOT EXISTS games") {
		t.Errorf("first migration should create games table")
	}
}
