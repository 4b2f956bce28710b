//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/reservation"
	"storefront/internal/infra"
	"storefront/internal/infra/repository"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/shared"
	repositorymock "storefront/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var issuedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newHeldReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	r, err := reservation.NewReservation(uuid.New(), uuid.New(), 2, reservation.Hold{
		Reference: "chk_a",
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(15 * time.Minute),
	})
	require.NoError(t, err)
	return r
}

// =============================================================================
// Create / UpdateHold Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockReservationWriteQueries, *reservation.Reservation, *mockDBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: row carries the hold",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, r *reservation.Reservation, db *mockDBTX) {
				mock.EXPECT().CreateReservation(ctx, db, sqlc.CreateReservationParams{
					ID:        r.ID(),
					SessionID: r.SessionID(),
					SkuID:     r.SKUID(),
					Reference: "chk_a",
					Quantity:  2,
					ExpiresAt: pgconv.TimeToPgtype(issuedAt.Add(15 * time.Minute)),
					CreatedAt: pgconv.TimeToPgtype(issuedAt),
					UpdatedAt: pgconv.TimeToPgtype(issuedAt),
				}).Return(nil)
			},
		},
		{
			name: "error: second reservation for the same session and sku",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, _ *reservation.Reservation, db *mockDBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateReservation(ctx, db, gomock.Any()).Return(dup)
			},
			expectKind: infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)
			r := newHeldReservation(t)

			tc.setupMock(mockQueries, r, mockDB)

			err := repo.Create(ctx, r)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReservationRepository_UpdateHold_Missing(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)

	mockQueries.EXPECT().UpdateReservationHold(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

	err := repo.UpdateHold(ctx, newHeldReservation(t))
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

// =============================================================================
// DeleteHeld Tests
// =============================================================================

func TestReservationRepository_DeleteHeld(t *testing.T) {
	ctx := context.Background()
	id, skuID := uuid.New(), uuid.New()

	testCases := []struct {
		name        string
		setupMock   func(*repositorymock.MockReservationWriteQueries, *mockDBTX)
		want        shared.Released
		wantDeleted bool
		wantErr     bool
	}{
		{
			name: "success: returns released quantity",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, db *mockDBTX) {
				mock.EXPECT().
					DeleteReservationByReference(ctx, db, sqlc.DeleteReservationByReferenceParams{ID: id, Reference: "chk_a"}).
					Return(sqlc.DeleteReservationByReferenceRow{SkuID: skuID, Quantity: 3}, nil)
			},
			want:        shared.Released{SKUID: skuID, Quantity: 3},
			wantDeleted: true,
		},
		{
			name: "reissued or already gone: nothing deleted",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, db *mockDBTX) {
				mock.EXPECT().DeleteReservationByReference(ctx, db, gomock.Any()).
					Return(sqlc.DeleteReservationByReferenceRow{}, pgx.ErrNoRows)
			},
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, db *mockDBTX) {
				mock.EXPECT().DeleteReservationByReference(ctx, db, gomock.Any()).
					Return(sqlc.DeleteReservationByReferenceRow{}, errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			released, deleted, err := repo.DeleteHeld(ctx, id, "chk_a")
			if tc.wantErr {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantDeleted, deleted)
			assert.Equal(t, tc.want, released)
		})
	}
}

func TestReservationRepository_ListExpiring(t *testing.T) {
	ctx := context.Background()
	before := issuedAt.Add(5 * time.Minute)
	row := sqlc.Reservation{
		ID:        uuid.New(),
		SessionID: uuid.New(),
		SkuID:     uuid.New(),
		Reference: "chk_b",
		Quantity:  4,
		ExpiresAt: pgconv.TimeToPgtype(issuedAt),
		CreatedAt: pgconv.TimeToPgtype(issuedAt.Add(-15 * time.Minute)),
		UpdatedAt: pgconv.TimeToPgtype(issuedAt.Add(-15 * time.Minute)),
	}

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)

	mockQueries.EXPECT().
		ListExpiringReservations(ctx, mockDB, sqlc.ListExpiringReservationsParams{Before: pgconv.TimeToPgtype(before), RowLimit: 100}).
		Return([]sqlc.Reservation{row}, nil)

	got, err := repo.ListExpiring(ctx, before, 100)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, row.ID, got[0].ID())
	assert.Equal(t, reservation.Reference("chk_b"), got[0].Reference())
	assert.Equal(t, 4, got[0].Quantity())
	assert.True(t, got[0].IsDue(before, 0))
}
