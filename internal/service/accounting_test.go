package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"medbot/internal/mocks"
	"medbot/pkg/logger"
	"medbot/pkg/metrics"
)

func TestAccountingService_RecordSearchSwallowsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	users.EXPECT().RecordSearch(gomock.Any(), int64(42), "aspirin").Return(errors.New("database is locked"))

	svc := NewAccountingService(users, logger.Nop(), metrics.New("test", nil))
	assert.NotPanics(t, func() {
		svc.RecordSearch(context.Background(), 42, "aspirin")
	})
}

func TestAccountingService_GetSearchCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	gomock.InOrder(
		users.EXPECT().GetSearchCount(gomock.Any(), int64(1)).Return(int64(7), nil),
		users.EXPECT().GetSearchCount(gomock.Any(), int64(2)).Return(int64(0), errors.New("unreachable")),
	)

	svc := NewAccountingService(users, logger.Nop(), metrics.New("test", nil))
	assert.Equal(t, int64(7), svc.GetSearchCount(context.Background(), 1))
	assert.Zero(t, svc.GetSearchCount(context.Background(), 2))
}

func TestAccountingService_RegisterAndTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	users.EXPECT().Upsert(gomock.Any(), int64(5), "alice").Return(nil)
	users.EXPECT().Count(gomock.Any()).Return(int64(3), nil)

	svc := NewAccountingService(users, logger.Nop(), metrics.New("test", nil))
	require.NoError(t, svc.RegisterCaller(context.Background(), 5, "alice"))

	total, err := svc.TotalCallers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
