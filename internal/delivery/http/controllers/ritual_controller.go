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

// AddRitualRequest is the request body for POST /memorials/{memorialID}/rituals.
// ExpiresAt is optional; omitted means the ritual is permanent.
type AddRitualRequest struct {
	RitualType string     `json:"ritual_type"`
	Message    *string    `json:"message"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

// Validate implements Validator.
func (a AddRitualRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.RitualType) == "" {
		errs = append(errs, "ritual_type is required")
	}
	return errs
}

// AddRitualSuccessResponse is the success response envelope for POST /memorials/{memorialID}/rituals (201).
type AddRitualSuccessResponse struct {
	Data  *domain.Ritual    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListRitualsSuccessResponse is the success response envelope for GET /memorials/{memorialID}/rituals (200).
type ListRitualsSuccessResponse struct {
	Data  []*domain.Ritual  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DeleteRitualResponse is the data payload for DELETE /memorials/{memorialID}/rituals/{ritualID} (200).
type DeleteRitualResponse struct {
	Status string `json:"status"`
}

// DeleteRitualSuccessResponse is the success response envelope for DELETE /memorials/{memorialID}/rituals/{ritualID} (200).
type DeleteRitualSuccessResponse struct {
	Data  DeleteRitualResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type RitualController struct {
	Logger  *slog.Logger
	Service domain.RitualService
}

func NewRitualController(logger *slog.Logger, svc domain.RitualService) *RitualController {
	return &RitualController{
		Logger:  logger,
		Service: svc,
	}
}

// AddRitual godoc
// @Summary Leave a ritual
// @Description Leaves a symbolic gesture (candle, flower, heart, or custom) on the memorial. Any accepted participant, including visitors, can leave one. An optional expires_at makes it temporary.
// @Tags rituals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param body body AddRitualRequest true "Ritual data"
// @Success 201 {object} controllers.AddRitualSuccessResponse "data contains the created ritual"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid ritual type)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/rituals [post]
func (c *RitualController) AddRitual(w http.ResponseWriter, r *http.Request) {
	memorialID := r.PathValue("memorialID")
	if memorialID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID")
		return
	}
	var req AddRitualRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	rt := &domain.Ritual{
		MemorialID: memorialID,
		RitualType: domain.RitualType(strings.TrimSpace(strings.ToLower(req.RitualType))),
		Message:    req.Message,
		ExpiresAt:  req.ExpiresAt,
	}
	if err := c.Service.AddRitual(r.Context(), rt, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "ritual_type must be \"candle\", \"flower\", \"heart\", or \"custom\"")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, rt)
}

// ListRituals godoc
// @Summary List active rituals
// @Description Returns the memorial's rituals, excluding expired ones. Permanent rituals always show. Any participant can list.
// @Tags rituals
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Success 200 {object} controllers.ListRitualsSuccessResponse "data is an array of rituals"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/rituals [get]
func (c *RitualController) ListRituals(w http.ResponseWriter, r *http.Request) {
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
	rituals, err := c.Service.ListRituals(r.Context(), memorialID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if rituals == nil {
		rituals = []*domain.Ritual{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rituals)
}

// DeleteRitual godoc
// @Summary Remove a ritual
// @Description Deletes a ritual. The user who left it may remove their own; the owner may remove any.
// @Tags rituals
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param ritualID path string true "Ritual ID (UUID)"
// @Success 200 {object} controllers.DeleteRitualSuccessResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/rituals/{ritualID} [delete]
func (c *RitualController) DeleteRitual(w http.ResponseWriter, r *http.Request) {
	memorialID := r.PathValue("memorialID")
	ritualID := r.PathValue("ritualID")
	if memorialID == "" || ritualID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID or ritualID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.DeleteRitual(r.Context(), memorialID, ritualID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial or ritual not found")
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
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteRitualResponse{Status: "deleted"})
}
