package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	h "github.com/sapeol/memorial-app/internal/delivery/http/helpers"
	"github.com/sapeol/memorial-app/internal/delivery/http/middleware"
	"github.com/sapeol/memorial-app/internal/domain"
)

// fakeMilestoneService implements domain.MilestoneService for handler tests.
type fakeMilestoneService struct {
	submitErr     error
	submitStatus  domain.ApprovalStatus
	listErr       error
	listResult    []*domain.Milestone
	approveErr    error
	approveResult *domain.Milestone
	rejectErr     error
	rejectResult  *domain.Milestone
	updateErr     error
	updateResult  *domain.Milestone
	deleteErr     error
	lastSubmit    *domain.Milestone
	lastUserID    string
}

func (f *fakeMilestoneService) SubmitMilestone(ctx context.Context, m *domain.Milestone, userID string) error {
	f.lastSubmit = m
	f.lastUserID = userID
	if f.submitErr != nil {
		return f.submitErr
	}
	m.ID = "ms-created"
	m.SubmittedBy = userID
	m.Status = f.submitStatus
	return nil
}

func (f *fakeMilestoneService) ListTimeline(ctx context.Context, memorialID, userID string) ([]*domain.Milestone, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeMilestoneService) ApproveMilestone(ctx context.Context, memorialID, milestoneID, userID string) (*domain.Milestone, error) {
	if f.approveErr != nil {
		return nil, f.approveErr
	}
	return f.approveResult, nil
}

func (f *fakeMilestoneService) RejectMilestone(ctx context.Context, memorialID, milestoneID, userID string) (*domain.Milestone, error) {
	if f.rejectErr != nil {
		return nil, f.rejectErr
	}
	return f.rejectResult, nil
}

func (f *fakeMilestoneService) UpdateMilestone(ctx context.Context, memorialID, milestoneID, userID string, upd domain.MilestoneUpdate) (*domain.Milestone, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateResult, nil
}

func (f *fakeMilestoneService) DeleteMilestone(ctx context.Context, memorialID, milestoneID, userID string) error {
	return f.deleteErr
}

func TestMilestoneController_SubmitMilestone(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		fakeStatus     domain.ApprovalStatus
		wantStatus     int
		wantBodySubstr string
		wantMsStatus   string
	}{
		{
			name:         "owner submission approved",
			body:         `{"title":"Married in 1963"}`,
			fakeStatus:   domain.StatusApproved,
			wantStatus:   http.StatusCreated,
			wantMsStatus: "approved",
		},
		{
			name:         "contributor submission pending",
			body:         `{"title":"Ran a marathon","description":"Boston, 1978"}`,
			fakeStatus:   domain.StatusPending,
			wantStatus:   http.StatusCreated,
			wantMsStatus: "pending",
		},
		{
			name:           "missing title",
			body:           `{"description":"no title"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "title is required",
		},
		{
			name:       "visitor forbidden",
			body:       `{"title":"Nope"}`,
			fakeErr:    domain.ErrForbidden,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no access reads as not found",
			body:       `{"title":"Nope"}`,
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeMilestoneService{submitErr: tt.fakeErr, submitStatus: tt.fakeStatus}
			ctrl := NewMilestoneController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/memorials/mem-1/milestones", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("memorialID", "mem-1")
			req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
			rr := httptest.NewRecorder()

			ctrl.SubmitMilestone(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope h.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				dataMap, ok := envelope.Data.(map[string]interface{})
				require.True(t, ok, "data must be object")
				assert.Equal(t, tt.wantMsStatus, dataMap["status"], "status set by service")
				assert.Equal(t, "mem-1", fake.lastSubmit.MemorialID)
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestMilestoneController_ApproveMilestone(t *testing.T) {
	tests := []struct {
		name           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{"success", nil, http.StatusOK, ""},
		{"not pending", domain.ErrInvalidInput, http.StatusBadRequest, "not pending"},
		{"not owner", domain.ErrForbidden, http.StatusForbidden, ""},
		{"not found", domain.ErrNotFound, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeMilestoneService{
				approveErr:    tt.fakeErr,
				approveResult: &domain.Milestone{ID: "ms-1", Status: domain.StatusApproved},
			}
			ctrl := NewMilestoneController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/memorials/mem-1/milestones/ms-1/approve", nil)
			req.SetPathValue("memorialID", "mem-1")
			req.SetPathValue("milestoneID", "ms-1")
			req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
			rr := httptest.NewRecorder()

			ctrl.ApproveMilestone(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope h.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				dataMap, ok := envelope.Data.(map[string]interface{})
				require.True(t, ok, "data must be object")
				assert.Equal(t, "approved", dataMap["status"])
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestMilestoneController_RejectMilestone(t *testing.T) {
	fake := &fakeMilestoneService{
		rejectResult: &domain.Milestone{ID: "ms-1", Status: domain.StatusRejected},
	}
	ctrl := NewMilestoneController(testLogger, fake)
	req := httptest.NewRequest(http.MethodPost, "http://test/memorials/mem-1/milestones/ms-1/reject", nil)
	req.SetPathValue("memorialID", "mem-1")
	req.SetPathValue("milestoneID", "ms-1")
	req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
	rr := httptest.NewRecorder()

	ctrl.RejectMilestone(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope h.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Error)
	dataMap, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok, "data must be object")
	assert.Equal(t, "rejected", dataMap["status"])
}

func TestMilestoneController_ListTimeline_EmptyIsArray(t *testing.T) {
	fake := &fakeMilestoneService{listResult: nil}
	ctrl := NewMilestoneController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "http://test/memorials/mem-1/milestones", nil)
	req.SetPathValue("memorialID", "mem-1")
	req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
	rr := httptest.NewRecorder()

	ctrl.ListTimeline(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"data":[]`, "nil list must serialize as empty array")
}
