package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sapeol/memorial-app/internal/delivery/http/helpers"
	"github.com/sapeol/memorial-app/internal/delivery/http/middleware"
	"github.com/sapeol/memorial-app/internal/domain"
)

// AddMediaRequest is the request body for POST /memorials/{memorialID}/media.
type AddMediaRequest struct {
	MediaType    string     `json:"media_type"`
	URL          string     `json:"url"`
	ThumbnailURL *string    `json:"thumbnail_url"`
	Caption      string     `json:"caption"`
	CapturedAt   *time.Time `json:"captured_at"`
	Tags         []string   `json:"tags"`
}

// Validate implements Validator.
func (a AddMediaRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.MediaType) == "" {
		errs = append(errs, "media_type is required")
	}
	if strings.TrimSpace(a.URL) == "" {
		errs = append(errs, "url is required")
	}
	return errs
}

// AddMediaSuccessResponse is the success response envelope for POST /memorials/{memorialID}/media (201).
type AddMediaSuccessResponse struct {
	Data  *domain.MediaItem `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListMediaSuccessResponse is the success response envelope for GET /memorials/{memorialID}/media (200).
type ListMediaSuccessResponse struct {
	Data  []*domain.MediaItem `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// UpdateMediaRequest is the request body for PATCH /memorials/{memorialID}/media/{mediaID}. All fields optional; omitted fields are unchanged.
type UpdateMediaRequest struct {
	Caption    *string    `json:"caption"`
	CapturedAt *time.Time `json:"captured_at"`
	Tags       []string   `json:"tags"`
}

// Validate implements Validator.
func (u UpdateMediaRequest) Validate() []string {
	return nil
}

// UpdateMediaSuccessResponse is the success response envelope for PATCH /memorials/{memorialID}/media/{mediaID} (200).
type UpdateMediaSuccessResponse struct {
	Data  *domain.MediaItem `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DeleteMediaResponse is the data payload for DELETE /memorials/{memorialID}/media/{mediaID} (200).
type DeleteMediaResponse struct {
	Status string `json:"status"`
}

// DeleteMediaSuccessResponse is the success response envelope for DELETE /memorials/{memorialID}/media/{mediaID} (200).
type DeleteMediaSuccessResponse struct {
	Data  DeleteMediaResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type MediaController struct {
	Logger  *slog.Logger
	Service domain.MediaService
}

func NewMediaController(logger *slog.Logger, svc domain.MediaService) *MediaController {
	return &MediaController{
		Logger:  logger,
		Service: svc,
	}
}

// AddMedia godoc
// @Summary Add a media item
// @Description Adds a photo, video, or audio item to the memorial gallery by URL. Owners and contributors can add; visitors cannot.
// @Tags media
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param body body AddMediaRequest true "Media item data"
// @Success 201 {object} controllers.AddMediaSuccessResponse "data contains the created media item"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid media type)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (visitor)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/media [post]
func (c *MediaController) AddMedia(w http.ResponseWriter, r *http.Request) {
	memorialID := r.PathValue("memorialID")
	if memorialID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID")
		return
	}
	var req AddMediaRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	item := &domain.MediaItem{
		MemorialID:   memorialID,
		MediaType:    domain.MediaType(strings.TrimSpace(strings.ToLower(req.MediaType))),
		URL:          req.URL,
		ThumbnailURL: req.ThumbnailURL,
		Caption:      req.Caption,
		CapturedAt:   req.CapturedAt,
		Tags:         req.Tags,
	}
	if err := c.Service.AddMedia(r.Context(), item, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "media_type must be \"photo\", \"video\", or \"audio\" and url is required")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, item)
}

// ListMedia godoc
// @Summary List media items
// @Description Returns the memorial's gallery, newest first. Any participant can list.
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Success 200 {object} controllers.ListMediaSuccessResponse "data is an array of media items"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/media [get]
func (c *MediaController) ListMedia(w http.ResponseWriter, r *http.Request) {
	memorialID := r.PathValue("memorialID")
	if memorialID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	items, err := c.Service.ListMedia(r.Context(), memorialID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if items == nil {
		items = []*domain.MediaItem{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, items)
}

// UpdateMedia godoc
// @Summary Update a media item
// @Description Updates a media item's caption, captured_at, and tags. The uploader may edit their own items; the owner may edit any. Optional fields omitted from body are unchanged.
// @Tags media
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param mediaID path string true "Media item ID (UUID)"
// @Param body body UpdateMediaRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.UpdateMediaSuccessResponse "data contains the updated media item"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/media/{mediaID} [patch]
func (c *MediaController) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	memorialID := r.PathValue("memorialID")
	mediaID := r.PathValue("mediaID")
	if memorialID == "" || mediaID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID or mediaID")
		return
	}
	var req UpdateMediaRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	upd := domain.MediaUpdate{
		Caption:    req.Caption,
		CapturedAt: req.CapturedAt,
		Tags:       req.Tags,
	}
	item, err := c.Service.UpdateMedia(r.Context(), memorialID, mediaID, userID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial or media item not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, item)
}

// DeleteMedia godoc
// @Summary Delete a media item
// @Description Deletes a media item. The uploader may delete their own; the owner may delete any.
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param mediaID path string true "Media item ID (UUID)"
// @Success 200 {object} controllers.DeleteMediaSuccessResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/media/{mediaID} [delete]
func (c *MediaController) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	memorialID := r.PathValue("memorialID")
	mediaID := r.PathValue("mediaID")
	if memorialID == "" || mediaID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID or mediaID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.DeleteMedia(r.Context(), memorialID, mediaID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial or media item not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteMediaResponse{Status: "deleted"})
}
