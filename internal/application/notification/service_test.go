package notification

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nexus-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	ns, _ := args.Get(0).([]domain.Notification)
	return ns, args.Error(1)
}
func (m *mockStore) Get(ctx context.Context, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	if n, _ := args.Get(0).(*domain.Notification); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) SetRead(ctx context.Context, notificationID string, isRead bool) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID, isRead)
	if n, _ := args.Get(0).(*domain.Notification); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestList(t *testing.T) {
	repo := new(mockStore)
	repo.On("ListByUser", mock.Anything, "1").Return([]domain.Notification{{ID: "1"}, {ID: "2"}}, nil)

	got, err := NewService(repo).List(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	repo.AssertExpectations(t)
}

func TestSetRead_Success(t *testing.T) {
	repo := new(mockStore)
	repo.On("Get", mock.Anything, "4").Return(&domain.Notification{ID: "4", UserID: "1"}, nil)
	repo.On("SetRead", mock.Anything, "4", true).Return(&domain.Notification{ID: "4", UserID: "1", IsRead: true}, nil)

	n, err := NewService(repo).SetRead(context.Background(), "4", "1", true)
	require.NoError(t, err)
	assert.True(t, n.IsRead)
	repo.AssertExpectations(t)
}

func TestSetRead_OtherUsersNotification(t *testing.T) {
	repo := new(mockStore)
	repo.On("Get", mock.Anything, "4").Return(&domain.Notification{ID: "4", UserID: "2"}, nil)

	_, err := NewService(repo).SetRead(context.Background(), "4", "1", true)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "SetRead", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetRead_NotFound(t *testing.T) {
	repo := new(mockStore)
	repo.On("Get", mock.Anything, "x").Return(nil, fmt.Errorf("notification not found: %w", domain.ErrNotFound))

	_, err := NewService(repo).SetRead(context.Background(), "x", "1", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetRead_StoreFailure(t *testing.T) {
	boom := errors.New("throttled")
	repo := new(mockStore)
	repo.On("Get", mock.Anything, "1").Return(&domain.Notification{ID: "1", UserID: "1"}, nil)
	repo.On("SetRead", mock.Anything, "1", false).Return(nil, boom)

	_, err := NewService(repo).SetRead(context.Background(), "1", "1", false)
	assert.ErrorIs(t, err, boom)
}
