package notification

import (
	"context"
	"errors"
	"time"

	notificationerrors "go-portal/internal/notification/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GetAll(ctx context.Context, userID string) ([]NotificationResponse, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, userID string) ([]NotificationResponse, error) {
	ns, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]NotificationResponse, len(ns))
	for i, n := range ns {
		resp[i] = mapToResponse(n)
	}
	return resp, nil
}

func (s *service) CountUnread(ctx context.Context, userID string) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, userID, id string) error {
	n, err := s.ownedNotification(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.MarkRead(ctx, n.ID.String())
}

func (s *service) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	n, err := s.ownedNotification(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, n.ID.String())
}

// ownedNotification enforces that read-state toggles and deletes only ever
// touch the recipient's own rows.
func (s *service) ownedNotification(ctx context.Context, userID, id string) (*Notification, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, notificationerrors.ErrInvalidNotificationID
	}

	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notificationerrors.ErrNotificationNotFound
		}
		return nil, err
	}

	if n.UserID.String() != userID {
		return nil, notificationerrors.ErrNotOwner
	}
	return n, nil
}

func mapToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		UserID:    n.UserID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Read:      n.Read,
		Link:      n.Link,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
}
