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

// CreateMemorialRequest is the request body for POST /memorials.
type CreateMemorialRequest struct {
	Name        string     `json:"name"`
	Bio         string     `json:"bio"`
	BirthDate   *time.Time `json:"birth_date"`
	PassingDate *time.Time `json:"passing_date"`
	CoverImage  *string    `json:"cover_image"`
	ThemeColor  string     `json:"theme_color"`
}

// Validate implements Validator.
func (c CreateMemorialRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// CreateMemorialSuccessResponse is the success response envelope for POST /memorials (201).
type CreateMemorialSuccessResponse struct {
	Data  *domain.Memorial  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetMemorialSuccessResponse is the success response envelope for GET /memorials/{memorialID} (200).
type GetMemorialSuccessResponse struct {
	Data  *domain.MemorialWithAccess `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

// ListMyMemorialsSuccessResponse is the success response envelope for GET /memorials/me (200).
type ListMyMemorialsSuccessResponse struct {
	Data  []*domain.Memorial `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// UpdateMemorialRequest is the request body for PATCH /memorials/{memorialID}. All fields optional; omitted fields are unchanged.
type UpdateMemorialRequest struct {
	Name        *string    `json:"name"`
	Bio         *string    `json:"bio"`
	BirthDate   *time.Time `json:"birth_date"`
	PassingDate *time.Time `json:"passing_date"`
	CoverImage  *string    `json:"cover_image"`
	ThemeColor  *string    `json:"theme_color"`
}

// Validate implements Validator.
func (u UpdateMemorialRequest) Validate() []string {
	var errs []string
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, "name cannot be empty")
	}
	return errs
}

// UpdateMemorialSuccessResponse is the success response envelope for PATCH /memorials/{memorialID} (200).
type UpdateMemorialSuccessResponse struct {
	Data  *domain.Memorial  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DeleteMemorialResponse is the data payload for DELETE /memorials/{memorialID} (200).
type DeleteMemorialResponse struct {
	Status string `json:"status"`
}

// DeleteMemorialSuccessResponse is the success response envelope for DELETE /memorials/{memorialID} (200).
type DeleteMemorialSuccessResponse struct {
	Data  DeleteMemorialResponse `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// ListParticipantsSuccessResponse is the success response envelope for GET /memorials/{memorialID}/participants (200).
type ListParticipantsSuccessResponse struct {
	Data  []*domain.Participant `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// ChangeParticipantAccessRequest is the request body for PATCH /memorials/{memorialID}/participants/{participantID}.
type ChangeParticipantAccessRequest struct {
	AccessLevel string `json:"access_level"`
}

// Validate implements Validator.
func (c ChangeParticipantAccessRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.AccessLevel) == "" {
		errs = append(errs, "access_level is required")
	}
	return errs
}

// ChangeParticipantAccessSuccessResponse is the success response envelope for PATCH /memorials/{memorialID}/participants/{participantID} (200).
type ChangeParticipantAccessSuccessResponse struct {
	Data  *domain.Participant `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// RemoveParticipantResponse is the data payload for DELETE /memorials/{memorialID}/participants/{participantID} (200).
type RemoveParticipantResponse struct {
	Status string `json:"status"`
}

// RemoveParticipantSuccessResponse is the success response envelope for DELETE /memorials/{memorialID}/participants/{participantID} (200).
type RemoveParticipantSuccessResponse struct {
	Data  RemoveParticipantResponse `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

type MemorialController struct {
	Logger  *slog.Logger
	Service domain.MemorialService
}

func NewMemorialController(logger *slog.Logger, svc domain.MemorialService) *MemorialController {
	return &MemorialController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateMemorial godoc
// @Summary Create a memorial
// @Description Create a new private memorial. The authenticated user becomes the owner. Only name is required.
// @Tags memorials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateMemorialRequest true "Memorial data"
// @Success 201 {object} controllers.CreateMemorialSuccessResponse "data contains the created memorial"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials [post]
func (c *MemorialController) CreateMemorial(w http.ResponseWriter, r *http.Request) {
	var req CreateMemorialRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	now := time.Now()
	m := domain.NewMemorial(req.Name, req.Bio, userID, req.ThemeColor, req.BirthDate, req.PassingDate, req.CoverImage, now, now)
	if err := c.Service.CreateMemorial(r.Context(), m); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, m)
}

// GetMemorial godoc
// @Summary Get a memorial by ID
// @Description Returns the memorial and the caller's access level. Only the owner and accepted participants can load it; everyone else gets 404.
// @Tags memorials
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Success 200 {object} controllers.GetMemorialSuccessResponse "data contains memorial and access_level"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID} [get]
func (c *MemorialController) GetMemorial(w http.ResponseWriter, r *http.Request) {
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
	res, err := c.Service.GetMemorial(r.Context(), memorialID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// ListMyMemorials godoc
// @Summary List memorials for the current user
// @Description Returns memorials the authenticated user owns or participates in (accepted invitations only).
// @Tags memorials
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListMyMemorialsSuccessResponse "data is an array of memorials"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/me [get]
func (c *MemorialController) ListMyMemorials(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	memorials, err := c.Service.ListMyMemorials(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if memorials == nil {
		memorials = []*domain.Memorial{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, memorials)
}

// UpdateMemorial godoc
// @Summary Update memorial settings
// @Description Updates memorial name, bio, dates, cover image, and theme color. Only the owner can update. Optional fields omitted from body are unchanged.
// @Tags memorials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param body body UpdateMemorialRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.UpdateMemorialSuccessResponse "data contains the updated memorial"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID} [patch]
func (c *MemorialController) UpdateMemorial(w http.ResponseWriter, r *http.Request) {
	memorialID := r.PathValue("memorialID")
	if memorialID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID")
		return
	}
	var req UpdateMemorialRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	upd := domain.MemorialUpdate{
		Name:        req.Name,
		Bio:         req.Bio,
		BirthDate:   req.BirthDate,
		PassingDate: req.PassingDate,
		CoverImage:  req.CoverImage,
		ThemeColor:  req.ThemeColor,
	}
	m, err := c.Service.UpdateMemorial(r.Context(), memorialID, userID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial not found")
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
	helpers.WriteJSONSuccess(w, http.StatusOK, m)
}

// DeleteMemorial godoc
// @Summary Delete a memorial
// @Description Deletes a memorial and all its content (milestones, media, guestbook entries, rituals, participants, invitations) in one transaction. Only the owner can delete.
// @Tags memorials
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Success 200 {object} controllers.DeleteMemorialSuccessResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID} [delete]
func (c *MemorialController) DeleteMemorial(w http.ResponseWriter, r *http.Request) {
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
	if err := c.Service.DeleteMemorial(r.Context(), memorialID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial not found")
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
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteMemorialResponse{Status: "deleted"})
}

// ListParticipants godoc
// @Summary List participants of a memorial
// @Description Returns the memorial's participants. The owner appears first as a derived entry. Only the owner can list.
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Success 200 {object} controllers.ListParticipantsSuccessResponse "data is an array of participants"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/participants [get]
func (c *MemorialController) ListParticipants(w http.ResponseWriter, r *http.Request) {
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
	participants, err := c.Service.ListParticipants(r.Context(), memorialID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial not found")
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
	if participants == nil {
		participants = []*domain.Participant{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participants)
}

// ChangeParticipantAccess godoc
// @Summary Change a participant's access level
// @Description Changes a participant's access level to contributor or visitor. The owner's level cannot be changed. Only the owner can change levels.
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param participantID path string true "Participant ID (UUID)"
// @Param body body ChangeParticipantAccessRequest true "New access level (contributor or visitor)"
// @Success 200 {object} controllers.ChangeParticipantAccessSuccessResponse "data contains the updated participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/participants/{participantID} [patch]
func (c *MemorialController) ChangeParticipantAccess(w http.ResponseWriter, r *http.Request) {
	memorialID := r.PathValue("memorialID")
	participantID := r.PathValue("participantID")
	if memorialID == "" || participantID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID or participantID")
		return
	}
	var req ChangeParticipantAccessRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	level := domain.AccessLevel(strings.TrimSpace(strings.ToLower(req.AccessLevel)))
	p, err := c.Service.ChangeParticipantAccess(r.Context(), memorialID, participantID, userID, level)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial or participant not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "access_level must be \"contributor\" or \"visitor\"")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}

// RemoveParticipant godoc
// @Summary Remove a participant from a memorial
// @Description Removes a participant's access. The owner cannot be removed. Only the owner can remove.
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param participantID path string true "Participant ID (UUID)"
// @Success 200 {object} controllers.RemoveParticipantSuccessResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/participants/{participantID} [delete]
func (c *MemorialController) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	memorialID := r.PathValue("memorialID")
	participantID := r.PathValue("participantID")
	if memorialID == "" || participantID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID or participantID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.RemoveParticipant(r.Context(), memorialID, participantID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial or participant not found")
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
	helpers.WriteJSONSuccess(w, http.StatusOK, RemoveParticipantResponse{Status: "removed"})
}
