package artwork

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"

	"github.com/artvault/artvault-api/internal/pkg/imagestore"
	"github.com/artvault/artvault-api/internal/pkg/jwt"
	"github.com/artvault/artvault-api/internal/pkg/validator"
)

// Service orchestrates guard, repository and image store for artwork
// operations. Every failure maps to one of the named errors in errors.go.
type Service struct {
	repo   Repository
	guard  *Guard
	images *imagestore.Store
}

// NewService creates artwork service
func NewService(repo Repository, guard *Guard, images *imagestore.Store) *Service {
	return &Service{repo: repo, guard: guard, images: images}
}

// Guard exposes the authorization guard for transport layers that
// authenticate outside the service (e.g. router middleware)
func (s *Service) Guard() *Guard {
	return s.guard
}

// Get returns a single artwork. Legacy rows whose image_url still holds an
// inline-encoded payload are materialized to a stored file and written back;
// everything else just gets its path normalized.
func (s *Service) Get(ctx context.Context, id int64) (*Artwork, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrArtworkNotFound
	}

	if a.ImageURL.Valid {
		if imagestore.IsInline(a.ImageURL.String) {
			if path, ok := s.images.StoreInline(a.ImageURL.String); ok {
				if err := s.repo.UpdateImageURL(ctx, a.ID, path); err != nil {
					log.Warn().Err(err).Int64("artwork_id", a.ID).Msg("Failed to persist migrated image path")
				}
				a.ImageURL = sql.NullString{String: path, Valid: true}
			}
		} else {
			a.ImageURL.String = imagestore.NormalizePath(a.ImageURL.String)
		}
	}

	return a, nil
}

// List returns all artworks, most recent first
func (s *Service) List(ctx context.Context) ([]*Artwork, error) {
	return s.repo.ListAll(ctx)
}

// Create inserts a new artwork for an admin or artist caller. Artists always
// own what they create; admins may set artist_id from the payload. An inline
// image that fails to store leaves image_url null rather than failing the
// operation.
func (s *Service) Create(ctx context.Context, claims *jwt.Claims, req *CreateArtworkRequest) (*Artwork, error) {
	if err := s.guard.AuthorizeMutation(claims); err != nil {
		return nil, err
	}

	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		return nil, &FieldValidationError{Fields: fieldErrors}
	}

	artistID := req.ArtistID
	if claims.IsArtist() {
		artistID = claims.Subject
	}

	status := req.Status
	if status == "" {
		status = StatusAvailable
	}

	a := &Artwork{
		Title:       req.Title,
		Artist:      toNullString(req.Artist),
		Description: toNullString(req.Description),
		Price:       *req.Price,
		Dimensions:  toNullString(req.Dimensions),
		Medium:      toNullString(req.Medium),
		Year:        toNullString(req.Year),
		Status:      status,
		ArtistID:    toNullString(artistID),
	}

	if req.Image != "" {
		if path, ok := s.images.StoreInline(req.Image); ok {
			a.ImageURL = sql.NullString{String: path, Valid: true}
		}
	} else if req.ImageURL != "" {
		a.ImageURL = sql.NullString{String: imagestore.NormalizePath(req.ImageURL), Valid: true}
	}

	id, err := s.repo.Insert(ctx, a)
	if err != nil {
		return nil, err
	}
	a.ID = id

	log.Info().Int64("artwork_id", id).Str("subject", claims.Subject).Msg("Artwork created")
	return a, nil
}

// Update applies a partial update after the guard sequence: mutation role,
// row existence, ownership. An inline image is resolved to a stored path
// first; store failure skips the image field without failing the call.
func (s *Service) Update(ctx context.Context, claims *jwt.Claims, id int64, req *UpdateArtworkRequest) (*Artwork, error) {
	if err := s.guard.AuthorizeMutation(claims); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrArtworkNotFound
	}

	if err := s.guard.AuthorizeOwnership(claims, existing.ArtistID); err != nil {
		return nil, err
	}

	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		return nil, &FieldValidationError{Fields: fieldErrors}
	}

	if req.Image != nil {
		if path, ok := s.images.StoreInline(*req.Image); ok {
			req.ImageURL = &path
		}
	}

	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrArtworkNotFound
	}
	if updated.ImageURL.Valid {
		updated.ImageURL.String = imagestore.NormalizePath(updated.ImageURL.String)
	}

	log.Info().Int64("artwork_id", id).Str("subject", claims.Subject).Msg("Artwork updated")
	return updated, nil
}

// Delete hard-deletes an artwork after the same guard sequence as Update.
// The stored image file is intentionally left on disk.
func (s *Service) Delete(ctx context.Context, claims *jwt.Claims, id int64) error {
	if err := s.guard.AuthorizeMutation(claims); err != nil {
		return err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrArtworkNotFound
	}

	if err := s.guard.AuthorizeOwnership(claims, existing.ArtistID); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrArtworkNotFound
	}

	log.Info().Int64("artwork_id", id).Str("subject", claims.Subject).Msg("Artwork deleted")
	return nil
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
