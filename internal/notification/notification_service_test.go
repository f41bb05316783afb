package notification_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-portal/internal/notification"
	notificationerrors "go-portal/internal/notification/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeNotificationRepository struct {
	withTxFn        func(tx *sql.Tx) notification.Repository
	createFn        func(ctx context.Context, n *notification.Notification) error
	createBatchFn   func(ctx context.Context, ns []notification.Notification) error
	findAllByUserFn func(ctx context.Context, userID string) ([]notification.Notification, error)
	findByIDFn      func(ctx context.Context, id string) (*notification.Notification, error)
	countUnreadFn   func(ctx context.Context, userID string) (int64, error)
	markReadFn      func(ctx context.Context, id string) error
	markAllReadFn   func(ctx context.Context, userID string) error
	deleteFn        func(ctx context.Context, id string) error
}

func (f *fakeNotificationRepository) WithTx(tx *sql.Tx) notification.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if f.createFn != nil {
		return f.createFn(ctx, n)
	}
	return nil
}

func (f *fakeNotificationRepository) CreateBatch(ctx context.Context, ns []notification.Notification) error {
	if f.createBatchFn != nil {
		return f.createBatchFn(ctx, ns)
	}
	return nil
}

func (f *fakeNotificationRepository) FindAllByUser(ctx context.Context, userID string) ([]notification.Notification, error) {
	if f.findAllByUserFn != nil {
		return f.findAllByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeNotificationRepository) FindByID(ctx context.Context, id string) (*notification.Notification, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	if f.countUnreadFn != nil {
		return f.countUnreadFn(ctx, userID)
	}
	return 0, nil
}

func (f *fakeNotificationRepository) MarkRead(ctx context.Context, id string) error {
	if f.markReadFn != nil {
		return f.markReadFn(ctx, id)
	}
	return nil
}

func (f *fakeNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	if f.markAllReadFn != nil {
		return f.markAllReadFn(ctx, userID)
	}
	return nil
}

func (f *fakeNotificationRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func TestNotificationService_GetAll(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success newest first from repo", func(t *testing.T) {
		repo := &fakeNotificationRepository{}
		svc := notification.NewService(repo)

		link := "/app"
		repo.findAllByUserFn = func(ctx context.Context, uid string) ([]notification.Notification, error) {
			assert.Equal(t, userID.String(), uid)
			return []notification.Notification{
				{
					ID:        uuid.New(),
					UserID:    userID,
					Title:     "Leave Request Approved",
					Message:   "Your annual request has been approved.",
					Type:      notification.TypeLeaveRequest,
					Link:      &link,
					CreatedAt: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
				},
			}, nil
		}

		resp, err := svc.GetAll(ctx, userID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Your annual request has been approved.", resp[0].Message)
		assert.False(t, resp[0].Read)
		assert.Equal(t, "/app", *resp[0].Link)
	})

	t.Run("negative repo error", func(t *testing.T) {
		repo := &fakeNotificationRepository{}
		svc := notification.NewService(repo)

		repo.findAllByUserFn = func(ctx context.Context, uid string) ([]notification.Notification, error) {
			return nil, errors.New("db error")
		}

		resp, err := svc.GetAll(ctx, userID.String())

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo := &fakeNotificationRepository{}
		svc := notification.NewService(repo)

		id := uuid.New()
		repo.findByIDFn = func(ctx context.Context, target string) (*notification.Notification, error) {
			return &notification.Notification{ID: id, UserID: userID}, nil
		}
		marked := false
		repo.markReadFn = func(ctx context.Context, target string) error {
			assert.Equal(t, id.String(), target)
			marked = true
			return nil
		}

		assert.NoError(t, svc.MarkRead(ctx, userID.String(), id.String()))
		assert.True(t, marked)
	})

	t.Run("negative other user's notification", func(t *testing.T) {
		repo := &fakeNotificationRepository{}
		svc := notification.NewService(repo)

		id := uuid.New()
		repo.findByIDFn = func(ctx context.Context, target string) (*notification.Notification, error) {
			return &notification.Notification{ID: id, UserID: uuid.New()}, nil
		}
		repo.markReadFn = func(ctx context.Context, target string) error {
			t.Fatal("must not touch another user's row")
			return nil
		}

		err := svc.MarkRead(ctx, userID.String(), id.String())

		assert.ErrorIs(t, err, notificationerrors.ErrNotOwner)
	})

	t.Run("negative not found", func(t *testing.T) {
		repo := &fakeNotificationRepository{}
		svc := notification.NewService(repo)

		err := svc.MarkRead(ctx, userID.String(), uuid.New().String())

		assert.ErrorIs(t, err, notificationerrors.ErrNotificationNotFound)
	})

	t.Run("negative invalid id", func(t *testing.T) {
		repo := &fakeNotificationRepository{}
		svc := notification.NewService(repo)

		err := svc.MarkRead(ctx, userID.String(), "not-a-uuid")

		assert.ErrorIs(t, err, notificationerrors.ErrInvalidNotificationID)
	})
}

func TestNotificationService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("negative other user's notification", func(t *testing.T) {
		repo := &fakeNotificationRepository{}
		svc := notification.NewService(repo)

		id := uuid.New()
		repo.findByIDFn = func(ctx context.Context, target string) (*notification.Notification, error) {
			return &notification.Notification{ID: id, UserID: uuid.New()}, nil
		}

		err := svc.Delete(ctx, userID.String(), id.String())

		assert.ErrorIs(t, err, notificationerrors.ErrNotOwner)
	})
}

func TestNotificationService_CountUnread(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := &fakeNotificationRepository{}
	svc := notification.NewService(repo)

	repo.countUnreadFn = func(ctx context.Context, uid string) (int64, error) {
		assert.Equal(t, userID.String(), uid)
		return 4, nil
	}

	count, err := svc.CountUnread(ctx, userID.String())

	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
