package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	h "github.com/sapeol/memorial-app/internal/delivery/http/helpers"
	"github.com/sapeol/memorial-app/internal/delivery/http/middleware"
	"github.com/sapeol/memorial-app/internal/domain"
)

// fakeInvitationService implements domain.InvitationService for handler tests.
type fakeInvitationService struct {
	createErr        error
	createResult     *domain.Invitation
	previewErr       error
	previewResult    *domain.InvitationPreview
	acceptErr        error
	acceptMemorialID string
	revokeErr        error
	listErr          error
	listResult       []*domain.Invitation
	listTotal        int
	lastCreateLevel  domain.AccessLevel
	lastCreateEmail  string
	lastAcceptID     string
	lastAcceptUserID string
	lastListSearch   string
	lastListParams   domain.PaginationParams
}

func (f *fakeInvitationService) CreateInvitation(ctx context.Context, memorialID, ownerID string, level domain.AccessLevel, email, phone string) (*domain.Invitation, error) {
	f.lastCreateLevel = level
	f.lastCreateEmail = email
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createResult != nil {
		return f.createResult, nil
	}
	return &domain.Invitation{ID: "inv-created", MemorialID: memorialID, AccessLevel: level, InvitedBy: ownerID}, nil
}

func (f *fakeInvitationService) GetInvitationPreview(ctx context.Context, invitationID string) (*domain.InvitationPreview, error) {
	if f.previewErr != nil {
		return nil, f.previewErr
	}
	return f.previewResult, nil
}

func (f *fakeInvitationService) AcceptInvitation(ctx context.Context, invitationID, userID string) (string, error) {
	f.lastAcceptID = invitationID
	f.lastAcceptUserID = userID
	if f.acceptErr != nil {
		return "", f.acceptErr
	}
	return f.acceptMemorialID, nil
}

func (f *fakeInvitationService) RevokeInvitation(ctx context.Context, memorialID, invitationID, ownerID string) error {
	return f.revokeErr
}

func (f *fakeInvitationService) ListInvitations(ctx context.Context, memorialID, ownerID, search string, params domain.PaginationParams) ([]*domain.Invitation, int, error) {
	f.lastListSearch = search
	f.lastListParams = params
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listResult, f.listTotal, nil
}

func TestInvitationController_CreateInvitation(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		wantLevel      domain.AccessLevel
	}{
		{
			name:       "success",
			body:       `{"access_level":"contributor","email":"friend@example.com"}`,
			wantStatus: http.StatusCreated,
			wantLevel:  domain.AccessContributor,
		},
		{
			name:       "no email still works",
			body:       `{"access_level":"visitor"}`,
			wantStatus: http.StatusCreated,
			wantLevel:  domain.AccessVisitor,
		},
		{
			name:           "missing access level",
			body:           `{"email":"friend@example.com"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "access_level is required",
		},
		{
			name:           "bad email format",
			body:           `{"access_level":"visitor","email":"not-an-email"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid email format",
		},
		{
			name:           "owner level rejected",
			body:           `{"access_level":"owner"}`,
			fakeErr:        domain.ErrInvalidInput,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "contributor",
		},
		{
			name:       "not owner",
			body:       `{"access_level":"visitor"}`,
			fakeErr:    domain.ErrForbidden,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "stranger gets not found",
			body:       `{"access_level":"visitor"}`,
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeInvitationService{createErr: tt.fakeErr}
			ctrl := NewInvitationController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/memorials/mem-1/invitations", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("memorialID", "mem-1")
			req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
			rr := httptest.NewRecorder()

			ctrl.CreateInvitation(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope h.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				assert.Equal(t, tt.wantLevel, fake.lastCreateLevel)
				dataMap, ok := envelope.Data.(map[string]interface{})
				require.True(t, ok, "data must be object")
				assert.Equal(t, "inv-created", dataMap["id"])
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestInvitationController_GetInvitationPreview(t *testing.T) {
	expires := time.Now().Add(10 * 24 * time.Hour)

	tests := []struct {
		name       string
		fakeErr    error
		fakeResult *domain.InvitationPreview
		wantStatus int
	}{
		{
			name: "success",
			fakeResult: &domain.InvitationPreview{
				ID:           "inv-1",
				MemorialName: "Grandma Rose",
				AccessLevel:  domain.AccessVisitor,
				ExpiresAt:    &expires,
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found",
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "expired returns gone",
			fakeErr:    domain.ErrExpired,
			wantStatus: http.StatusGone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeInvitationService{previewErr: tt.fakeErr, previewResult: tt.fakeResult}
			ctrl := NewInvitationController(testLogger, fake)
			// No user context: the preview endpoint is public.
			req := httptest.NewRequest(http.MethodGet, "http://test/invitations/inv-1/preview", nil)
			req.SetPathValue("invitationID", "inv-1")
			rr := httptest.NewRecorder()

			ctrl.GetInvitationPreview(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope h.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				dataMap, ok := envelope.Data.(map[string]interface{})
				require.True(t, ok, "data must be object")
				assert.Equal(t, "Grandma Rose", dataMap["memorial_name"])
			} else {
				require.NotNil(t, envelope.Error)
				if tt.wantStatus == http.StatusGone {
					assert.Equal(t, h.ErrCodeGone, envelope.Error.Code)
				}
			}
		})
	}
}

func TestInvitationController_AcceptInvitation(t *testing.T) {
	tests := []struct {
		name          string
		noUserContext bool
		fakeErr       error
		wantStatus    int
	}{
		{"success", false, nil, http.StatusOK},
		{"unauthenticated", true, nil, http.StatusUnauthorized},
		{"not found", false, domain.ErrNotFound, http.StatusNotFound},
		{"expired returns gone", false, domain.ErrExpired, http.StatusGone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeInvitationService{acceptErr: tt.fakeErr, acceptMemorialID: "mem-1"}
			ctrl := NewInvitationController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/invitations/inv-1/accept", nil)
			req.SetPathValue("invitationID", "inv-1")
			if !tt.noUserContext {
				req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
			}
			rr := httptest.NewRecorder()

			ctrl.AcceptInvitation(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantStatus == http.StatusOK {
				var envelope h.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.Nil(t, envelope.Error)
				dataMap, ok := envelope.Data.(map[string]interface{})
				require.True(t, ok, "data must be object")
				assert.Equal(t, "mem-1", dataMap["memorial_id"], "redirect target")
				assert.Equal(t, "user-123", fake.lastAcceptUserID)
			}
		})
	}
}

func TestInvitationController_RevokeInvitation(t *testing.T) {
	tests := []struct {
		name           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{"success", nil, http.StatusOK, ""},
		{"already accepted", domain.ErrInvalidInput, http.StatusBadRequest, "already accepted"},
		{"not owner", domain.ErrForbidden, http.StatusForbidden, ""},
		{"not found", domain.ErrNotFound, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeInvitationService{revokeErr: tt.fakeErr}
			ctrl := NewInvitationController(testLogger, fake)
			req := httptest.NewRequest(http.MethodDelete, "http://test/memorials/mem-1/invitations/inv-1", nil)
			req.SetPathValue("memorialID", "mem-1")
			req.SetPathValue("invitationID", "inv-1")
			req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
			rr := httptest.NewRecorder()

			ctrl.RevokeInvitation(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantBodySubstr != "" {
				var envelope h.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestInvitationController_ListInvitations(t *testing.T) {
	fake := &fakeInvitationService{
		listResult: []*domain.Invitation{
			{ID: "inv-1", MemorialID: "mem-1", AccessLevel: domain.AccessVisitor},
		},
		listTotal: 41,
	}
	ctrl := NewInvitationController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "http://test/memorials/mem-1/invitations?search=friend&page=2&page_size=20", nil)
	req.SetPathValue("memorialID", "mem-1")
	req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
	rr := httptest.NewRecorder()

	ctrl.ListInvitations(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "friend", fake.lastListSearch)
	assert.Equal(t, 2, fake.lastListParams.Page)
	assert.Equal(t, 20, fake.lastListParams.PageSize)

	var envelope h.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Error)
	dataMap, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok, "data must be object")
	pagination, ok := dataMap["pagination"].(map[string]interface{})
	require.True(t, ok, "pagination must be object")
	assert.Equal(t, float64(41), pagination["total"])
	assert.Equal(t, float64(3), pagination["total_pages"])
}
