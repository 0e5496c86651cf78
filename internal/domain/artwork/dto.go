package artwork

import (
	"database/sql"
	"strconv"
	"time"
)

// CreateArtworkRequest for POST /artworks. Image carries an optional
// inline-encoded payload that is persisted to disk before insert.
type CreateArtworkRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Artist      string   `json:"artist" validate:"omitempty,max=255"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Dimensions  string   `json:"dimensions" validate:"omitempty,max=255"`
	Medium      string   `json:"medium" validate:"omitempty,max=255"`
	Year        string   `json:"year" validate:"omitempty,max=32"`
	Status      string   `json:"status" validate:"omitempty,artwork_status"`
	Image       string   `json:"image"`
	ImageURL    string   `json:"image_url"`
	ArtistID    string   `json:"artist_id"`
}

// UpdateArtworkRequest for PUT /artworks/{id}. Only present fields are
// written; Image is resolved through the image store into ImageURL first.
type UpdateArtworkRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Artist      *string  `json:"artist" validate:"omitempty,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Dimensions  *string  `json:"dimensions" validate:"omitempty,max=255"`
	Medium      *string  `json:"medium" validate:"omitempty,max=255"`
	Year        *string  `json:"year" validate:"omitempty,max=32"`
	Status      *string  `json:"status" validate:"omitempty,artwork_status"`
	ImageURL    *string  `json:"image_url"`
	Image       *string  `json:"image"`
}

// ArtworkResponse represents an artwork in API responses. ID is exposed as a
// string to match frontend expectations.
type ArtworkResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Artist      string  `json:"artist,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url"`
	Dimensions  string  `json:"dimensions,omitempty"`
	Medium      string  `json:"medium,omitempty"`
	Year        string  `json:"year,omitempty"`
	Status      string  `json:"status"`
	ArtistID    *string `json:"artist_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ArtworkResponseFromEntity converts entity to response DTO
func ArtworkResponseFromEntity(a *Artwork) *ArtworkResponse {
	return &ArtworkResponse{
		ID:          strconv.FormatInt(a.ID, 10),
		Title:       a.Title,
		Artist:      a.Artist.String,
		Description: a.Description.String,
		Price:       a.Price,
		ImageURL:    nullableString(a.ImageURL),
		Dimensions:  a.Dimensions.String,
		Medium:      a.Medium.String,
		Year:        a.Year.String,
		Status:      a.Status,
		ArtistID:    nullableString(a.ArtistID),
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
