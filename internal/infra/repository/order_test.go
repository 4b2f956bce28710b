//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/payment"
	"storefront/internal/infra"
	"storefront/internal/infra/repository"
	sqlc "storefront/internal/infra/sqlc/generated"
	repositorymock "storefront/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderRepository_InsertPaymentIfAbsent(t *testing.T) {
	ctx := context.Background()
	rec := &payment.Record{
		ID:            uuid.New(),
		Reference:     "chk_a",
		CustomerEmail: "buyer@example.com",
		Amount:        decimal.RequireFromString("107.50"),
		Currency:      "NGN",
		PaidAt:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name        string
		setupMock   func(*repositorymock.MockOrderQueries, *mockDBTX)
		wantCreated bool
		wantErr     bool
	}{
		{
			name: "success: first confirmation creates the payment",
			setupMock: func(mock *repositorymock.MockOrderQueries, db *mockDBTX) {
				mock.EXPECT().InsertPaymentIfAbsent(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertPaymentIfAbsentParams) (uuid.UUID, error) {
						assert.Equal(t, "chk_a", arg.Reference)
						assert.Equal(t, "buyer@example.com", arg.CustomerEmail)
						assert.True(t, arg.PaidAt.Valid)
						return arg.ID, nil
					})
			},
			wantCreated: true,
		},
		{
			name: "replay: conflict returns no row",
			setupMock: func(mock *repositorymock.MockOrderQueries, db *mockDBTX) {
				mock.EXPECT().InsertPaymentIfAbsent(ctx, db, gomock.Any()).Return(uuid.Nil, pgx.ErrNoRows)
			},
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockOrderQueries, db *mockDBTX) {
				mock.EXPECT().InsertPaymentIfAbsent(ctx, db, gomock.Any()).Return(uuid.Nil, errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOrderQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOrderRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			created, err := repo.InsertPaymentIfAbsent(ctx, rec)
			if tc.wantErr {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCreated, created)
		})
	}
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	ctx := context.Background()
	skuA, skuB := uuid.New(), uuid.New()
	order := &payment.Order{
		ID:            uuid.New(),
		PaymentID:     uuid.New(),
		CustomerEmail: "buyer@example.com",
		Lines:         []payment.Line{{SKUID: skuA, Quantity: 1}, {SKUID: skuB, Quantity: 2}},
		CreatedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOrderQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOrderRepository(mockQueries, mockDB)

	gomock.InOrder(
		mockQueries.EXPECT().CreateOrder(ctx, mockDB, gomock.Any()).Return(nil),
		mockQueries.EXPECT().CreateOrderLine(ctx, mockDB, sqlc.CreateOrderLineParams{OrderID: order.ID, SkuID: skuA, Quantity: 1}).Return(nil),
		mockQueries.EXPECT().CreateOrderLine(ctx, mockDB, sqlc.CreateOrderLineParams{OrderID: order.ID, SkuID: skuB, Quantity: 2}).Return(nil),
	)

	require.NoError(t, repo.CreateOrder(ctx, order))
}
