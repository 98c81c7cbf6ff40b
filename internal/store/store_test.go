package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "games.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = sq.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sq,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			s, err := game.NewSession("geese", 5, 6)
			if err != nil {
				t.Fatal(err)
			}
			s.SubmitGuess("eagle")
			s.HandleKey("s")

			if err := st.Save(ctx, "g1", s); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := st.Get(ctx, "g1")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if !reflect.DeepEqual(got.BoardView(), s.BoardView()) {
				t.Fatal("board differs after round trip")
			}
			if got.Input() != "s" {
				t.Fatalf("Input = %q", got.Input())
			}

			// Update in place.
			got.SubmitGuess("geese")
			if err := st.Save(ctx, "g1", got); err != nil {
				t.Fatalf("Save update: %v", err)
			}
			again, err := st.Get(ctx, "g1")
			if err != nil {
				t.Fatalf("Get after update: %v", err)
			}
			if again.State() != game.StateWon || len(again.History()) != 2 {
				t.Fatalf("state=%s history=%d", again.State(), len(again.History()))
			}
		})
	}
}

func TestStoreNotFoundAndDelete(t *testing.T) {
	ctx := context.Background()
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := st.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get missing err = %v, want ErrNotFound", err)
			}
			s, _ := game.NewSession("crane", 5, 6)
			if err := st.Save(ctx, "g2", s); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := st.Delete(ctx, "g2"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := st.Get(ctx, "g2"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get deleted err = %v, want ErrNotFound", err)
			}
			if err := st.Delete(ctx, "g2"); err != nil {
				t.Fatalf("Delete twice: %v", err)
			}
		})
	}
}

func TestSQLiteKeepsLayout(t *testing.T) {
	ctx := context.Background()
	st := openStores(t)["sqlite"]
	l, err := game.ParseLayout([]string{"abcdef"})
	if err != nil {
		t.Fatal(err)
	}
	s, err := game.NewSession("face", 4, 3, game.WithLayout(l))
	if err != nil {
		t.Fatal(err)
	}
	s.SubmitGuess("cafe")
	if err := st.Save(ctx, "g3", s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := st.Get(ctx, "g3")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Layout().Alphabet() != "abcdef" {
		t.Fatalf("layout = %q", got.Layout().Alphabet())
	}
}

func TestMigrateIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.db")
	for i := 0; i < 2; i++ {
		st, err := OpenSQLite(path)
		if err != nil {
			t.Fatalf("OpenSQLite #%d: %v", i, err)
		}
		_ = st.Close()
	}
}
