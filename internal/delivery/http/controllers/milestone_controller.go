package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sapeol/memorial-app/internal/delivery/http/helpers"
	"github.com/sapeol/memorial-app/internal/delivery/http/middleware"
	"github.com/sapeol/memorial-app/internal/domain"
)

// SubmitMilestoneRequest is the request body for POST /memorials/{memorialID}/milestones.
type SubmitMilestoneRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	EventDate   *time.Time `json:"event_date"`
	Location    *string    `json:"location"`
	ImageURLs   []string   `json:"image_urls"`
}

// Validate implements Validator.
func (s SubmitMilestoneRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Title) == "" {
		errs = append(errs, "title is required")
	}
	return errs
}

// SubmitMilestoneSuccessResponse is the success response envelope for POST /memorials/{memorialID}/milestones (201).
type SubmitMilestoneSuccessResponse struct {
	Data  *domain.Milestone `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListTimelineSuccessResponse is the success response envelope for GET /memorials/{memorialID}/milestones (200).
type ListTimelineSuccessResponse struct {
	Data  []*domain.Milestone `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ReviewMilestoneSuccessResponse is the success response envelope for the approve and reject endpoints (200).
type ReviewMilestoneSuccessResponse struct {
	Data  *domain.Milestone `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// UpdateMilestoneRequest is the request body for PATCH /memorials/{memorialID}/milestones/{milestoneID}. All fields optional; omitted fields are unchanged.
type UpdateMilestoneRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	EventDate   *time.Time `json:"event_date"`
	Location    *string    `json:"location"`
	ImageURLs   []string   `json:"image_urls"`
}

// Validate implements Validator.
func (u UpdateMilestoneRequest) Validate() []string {
	var errs []string
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		errs = append(errs, "title cannot be empty")
	}
	return errs
}

// UpdateMilestoneSuccessResponse is the success response envelope for PATCH /memorials/{memorialID}/milestones/{milestoneID} (200).
type UpdateMilestoneSuccessResponse struct {
	Data  *domain.Milestone `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DeleteMilestoneResponse is the data payload for DELETE /memorials/{memorialID}/milestones/{milestoneID} (200).
type DeleteMilestoneResponse struct {
	Status string `json:"status"`
}

// DeleteMilestoneSuccessResponse is the success response envelope for DELETE /memorials/{memorialID}/milestones/{milestoneID} (200).
type DeleteMilestoneSuccessResponse struct {
	Data  DeleteMilestoneResponse `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

type MilestoneController struct {
	Logger  *slog.Logger
	Service domain.MilestoneService
}

func NewMilestoneController(logger *slog.Logger, svc domain.MilestoneService) *MilestoneController {
	return &MilestoneController{
		Logger:  logger,
		Service: svc,
	}
}

// SubmitMilestone godoc
// @Summary Submit a milestone
// @Description Adds a life-story milestone to the timeline. Owner submissions are approved immediately; contributor submissions start pending and await owner review. Visitors cannot submit.
// @Tags milestones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param body body SubmitMilestoneRequest true "Milestone data"
// @Success 201 {object} controllers.SubmitMilestoneSuccessResponse "data contains the created milestone with its status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (visitor)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/milestones [post]
func (c *MilestoneController) SubmitMilestone(w http.ResponseWriter, r *http.Request) {
	memorialID := r.PathValue("memorialID")
	if memorialID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID")
		return
	}
	var req SubmitMilestoneRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	m := &domain.Milestone{
		MemorialID:  memorialID,
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
		ImageURLs:   req.ImageURLs,
	}
	if err := c.Service.SubmitMilestone(r.Context(), m, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial not found")
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
	helpers.WriteJSONSuccess(w, http.StatusCreated, m)
}

// ListTimeline godoc
// @Summary List the milestone timeline
// @Description Returns the milestones visible to the caller: the owner sees everything including pending and rejected; everyone else sees approved milestones plus their own submissions.
// @Tags milestones
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Success 200 {object} controllers.ListTimelineSuccessResponse "data is an array of milestones"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/milestones [get]
func (c *MilestoneController) ListTimeline(w http.ResponseWriter, r *http.Request) {
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
	milestones, err := c.Service.ListTimeline(r.Context(), memorialID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if milestones == nil {
		milestones = []*domain.Milestone{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, milestones)
}

// ApproveMilestone godoc
// @Summary Approve a pending milestone
// @Description Approves a pending milestone, making it visible to all participants. Only the owner can approve; approved and rejected milestones cannot transition again.
// @Tags milestones
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param milestoneID path string true "Milestone ID (UUID)"
// @Success 200 {object} controllers.ReviewMilestoneSuccessResponse "data contains the approved milestone"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (not pending)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/milestones/{milestoneID}/approve [post]
func (c *MilestoneController) ApproveMilestone(w http.ResponseWriter, r *http.Request) {
	c.review(w, r, c.Service.ApproveMilestone)
}

// RejectMilestone godoc
// @Summary Reject a pending milestone
// @Description Rejects a pending milestone. Rejected milestones stay visible to their submitter only. Only the owner can reject; approved and rejected milestones cannot transition again.
// @Tags milestones
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param milestoneID path string true "Milestone ID (UUID)"
// @Success 200 {object} controllers.ReviewMilestoneSuccessResponse "data contains the rejected milestone"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (not pending)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/milestones/{milestoneID}/reject [post]
func (c *MilestoneController) RejectMilestone(w http.ResponseWriter, r *http.Request) {
	c.review(w, r, c.Service.RejectMilestone)
}

func (c *MilestoneController) review(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, memorialID, milestoneID, userID string) (*domain.Milestone, error)) {
	memorialID := r.PathValue("memorialID")
	milestoneID := r.PathValue("milestoneID")
	if memorialID == "" || milestoneID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID or milestoneID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	m, err := fn(r.Context(), memorialID, milestoneID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial or milestone not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "milestone is not pending")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, m)
}

// UpdateMilestone godoc
// @Summary Update a milestone
// @Description Edits a milestone. The submitter may edit their own pending submission; the owner may edit any milestone. Optional fields omitted from body are unchanged.
// @Tags milestones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param milestoneID path string true "Milestone ID (UUID)"
// @Param body body UpdateMilestoneRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.UpdateMilestoneSuccessResponse "data contains the updated milestone"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/milestones/{milestoneID} [patch]
func (c *MilestoneController) UpdateMilestone(w http.ResponseWriter, r *http.Request) {
	memorialID := r.PathValue("memorialID")
	milestoneID := r.PathValue("milestoneID")
	if memorialID == "" || milestoneID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID or milestoneID")
		return
	}
	var req UpdateMilestoneRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	upd := domain.MilestoneUpdate{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
		ImageURLs:   req.ImageURLs,
	}
	m, err := c.Service.UpdateMilestone(r.Context(), memorialID, milestoneID, userID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial or milestone not found")
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

// DeleteMilestone godoc
// @Summary Delete a milestone
// @Description Deletes a milestone. The submitter may delete their own; the owner may delete any.
// @Tags milestones
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param milestoneID path string true "Milestone ID (UUID)"
// @Success 200 {object} controllers.DeleteMilestoneSuccessResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/milestones/{milestoneID} [delete]
func (c *MilestoneController) DeleteMilestone(w http.ResponseWriter, r *http.Request) {
	memorialID := r.PathValue("memorialID")
	milestoneID := r.PathValue("milestoneID")
	if memorialID == "" || milestoneID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID or milestoneID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.DeleteMilestone(r.Context(), memorialID, milestoneID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial or milestone not found")
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
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteMilestoneResponse{Status: "deleted"})
}
