package artwork

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/artvault/artvault-api/internal/pkg/imagestore"
)

// Repository defines artwork data access interface
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Artwork, error)
	ListAll(ctx context.Context) ([]*Artwork, error)
	Insert(ctx context.Context, a *Artwork) (int64, error)
	Update(ctx context.Context, id int64, req *UpdateArtworkRequest) error
	UpdateImageURL(ctx context.Context, id int64, path string) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new artwork repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const artworkColumns = `
	id, title, artist, description, price, image_url,
	dimensions, medium, year, status, artist_id,
	created_at, updated_at
`

func (r *repository) GetByID(ctx context.Context, id int64) (*Artwork, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks WHERE id = $1`
	var a Artwork
	err := r.db.GetContext(ctx, &a, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artwork: %w", err)
	}
	return &a, nil
}

// ListAll returns all artworks, most recent first. Stored image paths are
// normalized to their public form on the way out.
func (r *repository) ListAll(ctx context.Context) ([]*Artwork, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks ORDER BY id DESC`
	var artworks []*Artwork
	if err := r.db.SelectContext(ctx, &artworks, query); err != nil {
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}
	for _, a := range artworks {
		if a.ImageURL.Valid {
			a.ImageURL.String = imagestore.NormalizePath(a.ImageURL.String)
		}
	}
	return artworks, nil
}

func (r *repository) Insert(ctx context.Context, a *Artwork) (int64, error) {
	query := `
		INSERT INTO artworks (title, artist, description, price, image_url, dimensions, medium, year, status, artist_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		a.Title,
		a.Artist,
		a.Description,
		a.Price,
		a.ImageURL,
		a.Dimensions,
		a.Medium,
		a.Year,
		a.Status,
		a.ArtistID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert artwork: %w", err)
	}
	return id, nil
}

// updateAllowlist is the fixed ordered set of columns a partial update may
// touch. The statement is built by filtering this list against field
// presence in the request, never by reflecting over the input.
var updateAllowlist = []struct {
	column string
	value  func(r *UpdateArtworkRequest) (interface{}, bool)
}{
	{"title", func(r *UpdateArtworkRequest) (interface{}, bool) { return deref(r.Title) }},
	{"artist", func(r *UpdateArtworkRequest) (interface{}, bool) { return deref(r.Artist) }},
	{"description", func(r *UpdateArtworkRequest) (interface{}, bool) { return deref(r.Description) }},
	{"price", func(r *UpdateArtworkRequest) (interface{}, bool) {
		if r.Price == nil {
			return nil, false
		}
		return *r.Price, true
	}},
	{"dimensions", func(r *UpdateArtworkRequest) (interface{}, bool) { return deref(r.Dimensions) }},
	{"medium", func(r *UpdateArtworkRequest) (interface{}, bool) { return deref(r.Medium) }},
	{"year", func(r *UpdateArtworkRequest) (interface{}, bool) { return deref(r.Year) }},
	{"status", func(r *UpdateArtworkRequest) (interface{}, bool) { return deref(r.Status) }},
	{"image_url", func(r *UpdateArtworkRequest) (interface{}, bool) { return deref(r.ImageURL) }},
}

func deref(s *string) (interface{}, bool) {
	if s == nil {
		return nil, false
	}
	return *s, true
}

// buildUpdate assembles the partial UPDATE statement. ErrNoFields when the
// request carries none of the allowed columns.
func buildUpdate(id int64, req *UpdateArtworkRequest) (string, []interface{}, error) {
	var sets []string
	args := []interface{}{id}
	argIdx := 2

	for _, f := range updateAllowlist {
		v, ok := f.value(req)
		if !ok {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s=$%d", f.column, argIdx))
		args = append(args, v)
		argIdx++
	}

	if len(sets) == 0 {
		return "", nil, ErrNoFields
	}

	sets = append(sets, "updated_at=NOW()")
	query := fmt.Sprintf("UPDATE artworks SET %s WHERE id=$1", strings.Join(sets, ", "))
	return query, args, nil
}

// Update writes only the fields present in the request. ErrNoChange when the
// statement affects zero rows.
func (r *repository) Update(ctx context.Context, id int64, req *UpdateArtworkRequest) error {
	query, args, err := buildUpdate(id, req)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update artwork: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNoChange
	}
	return nil
}

func (r *repository) UpdateImageURL(ctx context.Context, id int64, path string) error {
	query := `UPDATE artworks SET image_url=$2, updated_at=NOW() WHERE id=$1`
	if _, err := r.db.ExecContext(ctx, query, id, path); err != nil {
		return fmt.Errorf("failed to update artwork image: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM artworks WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete artwork: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows > 0, nil
}
