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

// CreateInvitationRequest is the request body for POST /memorials/{memorialID}/invitations.
// Email and phone are optional contact hints; when email is set an invitation email is sent.
type CreateInvitationRequest struct {
	AccessLevel string `json:"access_level"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// Validate implements Validator.
func (c CreateInvitationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.AccessLevel) == "" {
		errs = append(errs, "access_level is required")
	}
	if email := strings.TrimSpace(c.Email); email != "" && !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// CreateInvitationSuccessResponse is the success response envelope for POST /memorials/{memorialID}/invitations (201).
type CreateInvitationSuccessResponse struct {
	Data  *domain.Invitation `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// InvitationPreviewSuccessResponse is the success response envelope for GET /invitations/{invitationID}/preview (200).
type InvitationPreviewSuccessResponse struct {
	Data  *domain.InvitationPreview `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// AcceptInvitationResponse is the data payload for POST /invitations/{invitationID}/accept (200).
type AcceptInvitationResponse struct {
	MemorialID string `json:"memorial_id"`
}

// AcceptInvitationSuccessResponse is the success response envelope for POST /invitations/{invitationID}/accept (200).
type AcceptInvitationSuccessResponse struct {
	Data  AcceptInvitationResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// RevokeInvitationResponse is the data payload for DELETE /memorials/{memorialID}/invitations/{invitationID} (200).
type RevokeInvitationResponse struct {
	Status string `json:"status"`
}

// RevokeInvitationSuccessResponse is the success response envelope for DELETE /memorials/{memorialID}/invitations/{invitationID} (200).
type RevokeInvitationSuccessResponse struct {
	Data  RevokeInvitationResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// ListInvitationsResponse is the data payload for GET /memorials/{memorialID}/invitations (200).
type ListInvitationsResponse struct {
	Items      []*domain.Invitation   `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListInvitationsSuccessResponse is the success response envelope for GET /memorials/{memorialID}/invitations (200).
type ListInvitationsSuccessResponse struct {
	Data  ListInvitationsResponse `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateInvitation godoc
// @Summary Create an invitation
// @Description Creates an invitation granting contributor or visitor access, valid for 30 days. Only the owner can invite. When email is provided an invitation email with the shareable link is sent; the link works regardless of email delivery.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param body body CreateInvitationRequest true "Invitation data"
// @Success 201 {object} controllers.CreateInvitationSuccessResponse "data contains the created invitation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid access level)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/invitations [post]
func (c *InvitationController) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	memorialID := r.PathValue("memorialID")
	if memorialID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID")
		return
	}
	var req CreateInvitationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	level := domain.AccessLevel(strings.TrimSpace(strings.ToLower(req.AccessLevel)))
	inv, err := c.Service.CreateInvitation(r.Context(), memorialID, userID, level, req.Email, req.Phone)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial not found")
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
	helpers.WriteJSONSuccess(w, http.StatusCreated, inv)
}

// GetInvitationPreview godoc
// @Summary Preview an invitation
// @Description Returns public landing-page metadata for an invitation: memorial name, access level, expiry, and whether it was already accepted. No authentication required.
// @Tags invitations
// @Produce json
// @Param invitationID path string true "Invitation ID (UUID)"
// @Success 200 {object} controllers.InvitationPreviewSuccessResponse "data contains the preview"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 410 {object} helpers.APIResponse "error.code: gone (invitation expired)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{invitationID}/preview [get]
func (c *InvitationController) GetInvitationPreview(w http.ResponseWriter, r *http.Request) {
	invitationID := r.PathValue("invitationID")
	if invitationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing invitationID")
		return
	}
	preview, err := c.Service.GetInvitationPreview(r.Context(), invitationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "invitation not found")
			return
		}
		if errors.Is(err, domain.ErrExpired) {
			helpers.WriteJSONError(w, http.StatusGone, helpers.ErrCodeGone, "invitation expired")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, preview)
}

// AcceptInvitation godoc
// @Summary Accept an invitation
// @Description Redeems the invitation for the authenticated user and returns the memorial id to redirect to. Accepting an already-accepted invitation is a no-op and still returns the memorial id.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param invitationID path string true "Invitation ID (UUID)"
// @Success 200 {object} controllers.AcceptInvitationSuccessResponse "data contains memorial_id"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 410 {object} helpers.APIResponse "error.code: gone (invitation expired)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{invitationID}/accept [post]
func (c *InvitationController) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	invitationID := r.PathValue("invitationID")
	if invitationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing invitationID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	memorialID, err := c.Service.AcceptInvitation(r.Context(), invitationID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "invitation not found")
			return
		}
		if errors.Is(err, domain.ErrExpired) {
			helpers.WriteJSONError(w, http.StatusGone, helpers.ErrCodeGone, "invitation expired")
			return
		}
		if errors.Is(err, domain.ErrAlreadyParticipant) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AcceptInvitationResponse{MemorialID: memorialID})
}

// RevokeInvitation godoc
// @Summary Revoke a pending invitation
// @Description Deletes a pending invitation so its link stops working. Accepted invitations cannot be revoked; remove the participant instead. Only the owner can revoke.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param invitationID path string true "Invitation ID (UUID)"
// @Success 200 {object} controllers.RevokeInvitationSuccessResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (already accepted)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/invitations/{invitationID} [delete]
func (c *InvitationController) RevokeInvitation(w http.ResponseWriter, r *http.Request) {
	memorialID := r.PathValue("memorialID")
	invitationID := r.PathValue("invitationID")
	if memorialID == "" || invitationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memorialID or invitationID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.RevokeInvitation(r.Context(), memorialID, invitationID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "memorial or invitation not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invitation already accepted")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RevokeInvitationResponse{Status: "revoked"})
}

// ListInvitations godoc
// @Summary List invitations for a memorial
// @Description Returns a paginated list of the memorial's invitations. Only the owner can list. Use page and page_size query params. Optional search filters by invited email substring (case-insensitive).
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param memorialID path string true "Memorial ID (UUID)"
// @Param search query string false "Filter emails containing this string (case-insensitive)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListInvitationsSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /memorials/{memorialID}/invitations [get]
func (c *InvitationController) ListInvitations(w http.ResponseWriter, r *http.Request) {
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
	search := strings.TrimSpace(r.URL.Query().Get("search"))
	params := helpers.ParsePagination(r)
	list, total, err := c.Service.ListInvitations(r.Context(), memorialID, userID, search, params)
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
	if list == nil {
		list = []*domain.Invitation{}
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListInvitationsResponse{Items: list, Pagination: meta})
}
