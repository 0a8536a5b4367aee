package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sapeol/memorial-app/internal/delivery/http/helpers"
	"github.com/sapeol/memorial-app/internal/delivery/http/middleware"
	"github.com/sapeol/memorial-app/internal/domain"
)

// AddGuestbookEntryRequest is the request body for POST /memorials/{memorialID}/guestbook.
// AuthorName is optional; when omitted the user's profile name is used.
type AddGuestbookEntryRequest struct {
	Message      string  `json:"message"`
	AuthorName   string  `json:"author_name"`
	Relationship *string `json:"relationship"`
}

// Validate implements Validator.
func (a AddGuestbookEntryRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.Message) == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

// AddGuestbookEntrySuccessResponse is the success response envelope for POST /memorials/{memorialID}/guestbook (201).
type AddGuestbookEntrySuccessResponse struct {
	Data  *domain.GuestbookEntry `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// ListGuestbookSuccessResponse is the success response envelope for GET /memorials/{memorialID}/guestbook (200).
type ListGuestbookSuccessResponse struct {
	Data  []*domain.GuestbookEntry `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// UpdateGuestbookEntryRequest is the request body for PATCH /memorials/{memorialID}/guestbook/{entryID}.
type UpdateGuestbookEntryRequest struct {
	Message string `json:"message"`
}

// Validate implements Validator.
func (u UpdateGuestbookEntryRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(u.Message) == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

// UpdateGuestbookEntrySuccessResponse is the success response envelope for PATCH /memorials/{memorialID}/guestbook/{entryID} (200).
type UpdateGuestbookEntrySuccessResponse struct {
	Data  *domain.GuestbookEntry `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// DeleteGuestbookEntryResponse is the data payload for DELETE /memorials/{memorialID}/guestbook/{entryID} (200).
type DeleteGuestbookEntryResponse struct {
	Status string `json:"status"`
}

// DeleteGuestbookEntrySuccessResponse is the success response envelope for DELETE /memorials/{memorialID}/guestbook/{entryID} (200).
type DeleteGuestbookEntrySuccessResponse struct {
	Data  DeleteGuestbookEntryResponse `json:"data"`
	Error *helpers.APIError            `json:"error"`
}

type GuestbookController struct {
	Logger  *slog.Logger
	Service domain.GuestbookService
}

func NewGuestbookController(logger *slog.Logger, svc domain.GuestbookService) *GuestbookController {
	return &GuestbookController{
		Logger:  logger,
		Service: svc,
	}
}

// AddEntry godoc
// @Summary Sign the guestbook
// @Description Adds a guestbook message. Any accepted participant, including visitors, can sign.
// @Tags guestbook
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param body body AddGuestbookEntryRequest true "Guestbook entry data"
// @Success 201 {object} controllers.AddGuestbookEntrySuccessResponse "data contains the created entry"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/guestbook [post]
func (c *GuestbookController) AddEntry(w http.ResponseWriter, r *http.Request) {
	memorialID := r.PathValue("memorialID")
	if memorialID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID")
		return
	}
	var req AddGuestbookEntryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	entry := &domain.GuestbookEntry{
		MemorialID:   memorialID,
		AuthorName:   strings.TrimSpace(req.AuthorName),
		Message:      req.Message,
		Relationship: req.Relationship,
	}
	if err := c.Service.AddEntry(r.Context(), entry, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, entry)
}

// ListEntries godoc
// @Summary List guestbook entries
// @Description Returns the memorial's guestbook entries, newest first. Any participant can list.
// @Tags guestbook
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Success 200 {object} controllers.ListGuestbookSuccessResponse "data is an array of entries"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/guestbook [get]
func (c *GuestbookController) ListEntries(w http.ResponseWriter, r *http.Request) {
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
	entries, err := c.Service.ListEntries(r.Context(), memorialID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if entries == nil {
		entries = []*domain.GuestbookEntry{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}

// UpdateEntry godoc
// @Summary Edit a guestbook entry
// @Description Updates a guestbook entry's message. The author may edit their own entries; the owner may edit any.
// @Tags guestbook
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param entryID path string true "Entry ID (UUID)"
// @Param body body UpdateGuestbookEntryRequest true "New message"
// @Success 200 {object} controllers.UpdateGuestbookEntrySuccessResponse "data contains the updated entry"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/guestbook/{entryID} [patch]
func (c *GuestbookController) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	memorialID := r.PathValue("memorialID")
	entryID := r.PathValue("entryID")
	if memorialID == "" || entryID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID or entryID")
		return
	}
	var req UpdateGuestbookEntryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	entry, err := c.Service.UpdateEntry(r.Context(), memorialID, entryID, userID, req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial or entry not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entry)
}

// DeleteEntry godoc
// @Summary Delete a guestbook entry
// @Description Deletes a guestbook entry. The author may delete their own; the owner may delete any.
// @Tags guestbook
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param entryID path string true "Entry ID (UUID)"
// @Success 200 {object} controllers.DeleteGuestbookEntrySuccessResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/guestbook/{entryID} [delete]
func (c *GuestbookController) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	memorialID := r.PathValue("memorialID")
	entryID := r.PathValue("entryID")
	if memorialID == "" || entryID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID or entryID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.DeleteEntry(r.Context(), memorialID, entryID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial or entry not found")
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
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteGuestbookEntryResponse{Status: "deleted"})
}
