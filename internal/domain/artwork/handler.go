package artwork

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/artvault/artvault-api/internal/middleware"
	"github.com/artvault/artvault-api/internal/pkg/response"
)

// Handler handles artwork HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates artwork handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /artworks
// @Summary List all artworks
// @Tags Artwork
// @Produce json
// @Success 200 {object} response.Response{data=[]ArtworkResponse}
// @Failure 500 {object} response.Response
// @Router /artworks [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	artworks, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list artworks")
		response.InternalError(w)
		return
	}

	items := make([]*ArtworkResponse, len(artworks))
	for i, a := range artworks {
		items[i] = ArtworkResponseFromEntity(a)
	}

	response.OK(w, items)
}

// Get handles GET /artworks/{id}
// @Summary Get artwork by ID
// @Tags Artwork
// @Produce json
// @Param id path string true "Artwork ID"
// @Success 200 {object} response.Response{data=ArtworkResponse}
// @Failure 400,404,500 {object} response.Response
// @Router /artworks/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid artwork ID")
		return
	}

	a, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.OK(w, ArtworkResponseFromEntity(a))
}

// Create handles POST /artworks
// @Summary Create artwork
// @Tags Artwork
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateArtworkRequest true "Artwork data"
// @Success 201 {object} response.Response{data=ArtworkResponse}
// @Failure 400,401,403,422,500 {object} response.Response
// @Router /artworks [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateArtworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	claims := middleware.GetClaims(r.Context())
	a, err := h.service.Create(r.Context(), claims, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Created(w, ArtworkResponseFromEntity(a))
}

// Update handles PUT /artworks/{id}
// @Summary Update artwork (partial)
// @Tags Artwork
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Artwork ID"
// @Param request body UpdateArtworkRequest true "Fields to update"
// @Success 200 {object} response.Response{data=ArtworkResponse}
// @Failure 400,401,403,404,409,422,500 {object} response.Response
// @Router /artworks/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid artwork ID")
		return
	}

	var req UpdateArtworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	claims := middleware.GetClaims(r.Context())
	a, err := h.service.Update(r.Context(), claims, id, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.OK(w, ArtworkResponseFromEntity(a))
}

// Delete handles DELETE /artworks/{id}
// @Summary Delete artwork
// @Tags Artwork
// @Produce json
// @Security BearerAuth
// @Param id path string true "Artwork ID"
// @Success 204 {string} string "No Content"
// @Failure 400,401,403,404,500 {object} response.Response
// @Router /artworks/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid artwork ID")
		return
	}

	claims := middleware.GetClaims(r.Context())
	if err := h.service.Delete(r.Context(), claims, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	response.NoContent(w)
}

// writeError maps service errors to the uniform error envelope
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErr *FieldValidationError
	switch {
	case errors.Is(err, ErrArtworkNotFound):
		response.NotFound(w, "Artwork not found")
	case errors.Is(err, ErrUnauthenticated):
		response.Unauthorized(w, "Authentication required")
	case errors.Is(err, ErrInvalidToken):
		response.Unauthorized(w, "Invalid token")
	case errors.Is(err, ErrNotAllowed):
		response.Forbidden(w, "Only admins and artists can modify artworks")
	case errors.Is(err, ErrNotOwner):
		response.Forbidden(w, "You can only manage your own artworks")
	case errors.Is(err, ErrNoFields):
		response.BadRequest(w, "No fields to update")
	case errors.Is(err, ErrNoChange):
		response.Conflict(w, "Artwork was not modified")
	case errors.As(err, &fieldErr):
		response.ValidationError(w, fieldErr.Fields)
	default:
		log.Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", r.Header.Get("X-Request-ID")).
			Msg("Artwork request failed")
		response.InternalError(w)
	}
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
