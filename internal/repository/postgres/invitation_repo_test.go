package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/sapeol/memorial-app/internal/domain"
)

func TestInvitationRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	expires := created.Add(domain.InvitationTTL)
	email := "friend@example.com"

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Invitation
		wantErr error
	}{
		{
			name: "found",
			id:   "inv-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, memorial_id, email, phone, access_code, access_level`).
					WithArgs("inv-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "memorial_id", "email", "phone", "access_code", "access_level", "invited_by", "expires_at", "accepted_at", "created_at"}).
						AddRow("inv-1", "mem-1", email, nil, "AB12CD34", "contributor", "owner-1", expires, nil, created))
			},
			want: &domain.Invitation{
				ID:          "inv-1",
				MemorialID:  "mem-1",
				Email:       &email,
				AccessCode:  "AB12CD34",
				AccessLevel: domain.AccessContributor,
				InvitedBy:   "owner-1",
				ExpiresAt:   &expires,
				CreatedAt:   created,
			},
		},
		{
			name: "not found",
			id:   "inv-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, memorial_id, email, phone, access_code, access_level`).
					WithArgs("inv-missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewInvitationRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInvitationRepository_ListByMemorialID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	email := "friend@example.com"

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs("mem-1", "friend").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT id, memorial_id, email, phone, access_code, access_level`).
		WithArgs("mem-1", "friend", 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "memorial_id", "email", "phone", "access_code", "access_level", "invited_by", "expires_at", "accepted_at", "created_at"}).
			AddRow("inv-1", "mem-1", email, nil, "AB12CD34", "visitor", "owner-1", nil, nil, created))

	repo := NewInvitationRepository(db)
	got, total, err := repo.ListByMemorialID(ctx, "mem-1", "friend", domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, got, 1)
	require.Equal(t, "inv-1", got[0].ID)
	require.Equal(t, domain.AccessVisitor, got[0].AccessLevel)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_MarkAccepted(t *testing.T) {
	ctx := context.Background()
	acceptedAt := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

	t.Run("pending row updated", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE invitations SET accepted_at = \$1`).
			WithArgs(acceptedAt, "inv-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewInvitationRepository(db)
		require.NoError(t, repo.MarkAccepted(ctx, "inv-1", acceptedAt))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already accepted is a no-op", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE invitations SET accepted_at = \$1`).
			WithArgs(acceptedAt, "inv-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewInvitationRepository(db)
		require.NoError(t, repo.MarkAccepted(ctx, "inv-1", acceptedAt))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInvitationRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			id:   "inv-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM invitations WHERE id = \$1`).
					WithArgs("inv-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "no row returns ErrNotFound",
			id:   "inv-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM invitations WHERE id = \$1`).
					WithArgs("inv-missing").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewInvitationRepository(db)
			err = repo.Delete(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
