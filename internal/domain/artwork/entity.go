package artwork

import (
	"database/sql"
	"time"
)

// Artwork statuses
const (
	StatusAvailable = "available"
	StatusReserved  = "reserved"
	StatusSold      = "sold"
)

// Artwork represents a catalog entry. ArtistID is the owning caller's subject,
// null for legacy rows created before ownership tracking.
type Artwork struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Artist      sql.NullString `db:"artist"`
	Description sql.NullString `db:"description"`
	Price       float64        `db:"price"`
	ImageURL    sql.NullString `db:"image_url"`
	Dimensions  sql.NullString `db:"dimensions"`
	Medium      sql.NullString `db:"medium"`
	Year        sql.NullString `db:"year"`
	Status      string         `db:"status"`
	ArtistID    sql.NullString `db:"artist_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// OwnedBy reports whether the artwork belongs to the given subject.
// Ownership is compared as strings; rows without an artist_id match nobody.
func (a *Artwork) OwnedBy(subject string) bool {
	return a.ArtistID.Valid && a.ArtistID.String == subject
}
