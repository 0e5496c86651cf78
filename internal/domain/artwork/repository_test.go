package artwork

import (
	"strings"
	"testing"
)

func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestBuildUpdate(t *testing.T) {
	t.Run("single field", func(t *testing.T) {
		query, args, err := buildUpdate(5, &UpdateArtworkRequest{Title: strPtr("Sunset")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "UPDATE artworks SET title=$2, updated_at=NOW() WHERE id=$1"
		if query != want {
			t.Fatalf("expected %q, got %q", want, query)
		}
		if len(args) != 2 || args[0] != int64(5) || args[1] != "Sunset" {
			t.Fatalf("unexpected args: %v", args)
		}
	})

	t.Run("fields follow allowlist order", func(t *testing.T) {
		req := &UpdateArtworkRequest{
			Status:   strPtr("sold"),
			Title:    strPtr("Dawn"),
			Price:    floatPtr(250),
			ImageURL: strPtr("/static/uploads/a.jpg"),
		}
		query, args, err := buildUpdate(9, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "UPDATE artworks SET title=$2, price=$3, status=$4, image_url=$5, updated_at=NOW() WHERE id=$1"
		if query != want {
			t.Fatalf("expected %q, got %q", want, query)
		}
		if len(args) != 5 {
			t.Fatalf("expected 5 args, got %d", len(args))
		}
		if args[1] != "Dawn" || args[2] != float64(250) || args[3] != "sold" || args[4] != "/static/uploads/a.jpg" {
			t.Fatalf("unexpected args: %v", args)
		}
	})

	t.Run("all allowed columns", func(t *testing.T) {
		req := &UpdateArtworkRequest{
			Title:       strPtr("t"),
			Artist:      strPtr("a"),
			Description: strPtr("d"),
			Price:       floatPtr(1),
			Dimensions:  strPtr("10x10"),
			Medium:      strPtr("oil"),
			Year:        strPtr("2020"),
			Status:      strPtr("available"),
			ImageURL:    strPtr("x.jpg"),
		}
		query, args, err := buildUpdate(1, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, col := range []string{"title", "artist", "description", "price", "dimensions", "medium", "year", "status", "image_url"} {
			if !strings.Contains(query, col+"=$") {
				t.Fatalf("expected column %s in query %q", col, query)
			}
		}
		if len(args) != 10 {
			t.Fatalf("expected 10 args, got %d", len(args))
		}
	})

	t.Run("empty request", func(t *testing.T) {
		if _, _, err := buildUpdate(1, &UpdateArtworkRequest{}); err != ErrNoFields {
			t.Fatalf("expected ErrNoFields, got %v", err)
		}
	})

	t.Run("unresolved inline image alone is not a field", func(t *testing.T) {
		// Image is resolved into ImageURL by the service; a raw payload by
		// itself must not reach the statement.
		if _, _, err := buildUpdate(1, &UpdateArtworkRequest{Image: strPtr("data:image/png;base64,AAAA")}); err != ErrNoFields {
			t.Fatalf("expected ErrNoFields, got %v", err)
		}
	})
}
