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

// fakeRitualService implements domain.RitualService for handler tests.
type fakeRitualService struct {
	addErr     error
	listErr    error
	listResult []*domain.Ritual
	deleteErr  error
	lastAdd    *domain.Ritual
	lastUserID string
}

func (f *fakeRitualService) AddRitual(ctx context.Context, rt *domain.Ritual, userID string) error {
	f.lastAdd = rt
	f.lastUserID = userID
	if f.addErr != nil {
		return f.addErr
	}
	rt.ID = "rit-created"
	rt.UserID = userID
	return nil
}

func (f *fakeRitualService) ListRituals(ctx context.Context, memorialID, userID string) ([]*domain.Ritual, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeRitualService) DeleteRitual(ctx context.Context, memorialID, ritualID, userID string) error {
	return f.deleteErr
}

func TestRitualController_AddRitual(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		wantType       domain.RitualType
	}{
		{
			name:       "candle",
			body:       `{"ritual_type":"candle"}`,
			wantStatus: http.StatusCreated,
			wantType:   domain.RitualCandle,
		},
		{
			name:       "type is normalized",
			body:       `{"ritual_type":" Flower "}`,
			wantStatus: http.StatusCreated,
			wantType:   domain.RitualFlower,
		},
		{
			name:       "custom with message",
			body:       `{"ritual_type":"custom","message":"Played her favorite song"}`,
			wantStatus: http.StatusCreated,
			wantType:   domain.RitualCustom,
		},
		{
			name:           "missing type",
			body:           `{"message":"hi"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "ritual_type is required",
		},
		{
			name:           "unknown type",
			body:           `{"ritual_type":"balloon"}`,
			fakeErr:        domain.ErrInvalidInput,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "candle",
		},
		{
			name:       "no access reads as not found",
			body:       `{"ritual_type":"candle"}`,
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRitualService{addErr: tt.fakeErr}
			ctrl := NewRitualController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/memorials/mem-1/rituals", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("memorialID", "mem-1")
			req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
			rr := httptest.NewRecorder()

			ctrl.AddRitual(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope h.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				assert.Equal(t, tt.wantType, fake.lastAdd.RitualType)
				dataMap, ok := envelope.Data.(map[string]interface{})
				require.True(t, ok, "data must be object")
				assert.Equal(t, "rit-created", dataMap["id"])
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestRitualController_DeleteRitual(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"not leaver or owner", domain.ErrForbidden, http.StatusForbidden},
		{"ritual not found", domain.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRitualService{deleteErr: tt.fakeErr}
			ctrl := NewRitualController(testLogger, fake)
			req := httptest.NewRequest(http.MethodDelete, "http://test/memorials/mem-1/rituals/rit-1", nil)
			req.SetPathValue("memorialID", "mem-1")
			req.SetPathValue("ritualID", "rit-1")
			req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
			rr := httptest.NewRecorder()

			ctrl.DeleteRitual(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rr.Body.String(), `"status":"deleted"`)
			}
		})
	}
}

func TestRitualController_ListRituals_EmptyIsArray(t *testing.T) {
	fake := &fakeRitualService{listResult: nil}
	ctrl := NewRitualController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "http://test/memorials/mem-1/rituals", nil)
	req.SetPathValue("memorialID", "mem-1")
	req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
	rr := httptest.NewRecorder()

	ctrl.ListRituals(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"data":[]`, "nil list must serialize as empty array")
}
