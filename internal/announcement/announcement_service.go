package announcement

import (
	"context"
	"database/sql"
	"errors"
	"time"

	announcementerrors "go-portal/internal/announcement/errors"
	"go-portal/internal/domain"
	"go-portal/internal/employee"
	"go-portal/internal/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, actor domain.Actor, req CreateAnnouncementRequest) (CreateResponse, error)
	GetAll(ctx context.Context) ([]AnnouncementResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	fanout    notification.Fanout
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	fanout notification.Fanout,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("announcement.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("announcement.service")
	}
	return &service{db: db, repo: repo, employees: employees, fanout: fanout, logger: l}
}

func (s *service) Create(ctx context.Context, actor domain.Actor, req CreateAnnouncementRequest) (CreateResponse, error) {
	s.logger.Debug("create announcement requested",
		zap.String("created_by", actor.ID.String()),
		zap.String("title", req.Title),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create announcement begin tx failed", zap.Error(err))
		return CreateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	announcementType := req.Type
	if announcementType == "" {
		announcementType = TypeGeneral
	}

	a := &Announcement{
		ID:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		Type:      announcementType,
		CreatedBy: actor.ID,
	}

	if err := qtx.Create(ctx, a); err != nil {
		s.logger.Error("create announcement persist failed", zap.Error(err))
		return CreateResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create announcement commit failed", zap.Error(err))
		return CreateResponse{}, err
	}

	// Broadcast runs after commit: the announcement stands on its own and the
	// fanout result is reported, never propagated as a failure.
	outcome := s.broadcast(ctx, a.Title)

	s.logger.Info("create announcement success",
		zap.String("announcement_id", a.ID.String()),
		zap.Int("notified", outcome.Count),
		zap.Bool("delivered", outcome.Delivered),
	)

	return CreateResponse{
		Announcement: mapToResponse(*a),
		Notification: outcome,
	}, nil
}

func (s *service) broadcast(ctx context.Context, title string) notification.DeliveryOutcome {
	recipientIDs, err := s.employees.FindActiveIDs(ctx)
	if err != nil {
		s.logger.Warn("announcement recipient lookup failed", zap.Error(err))
		return notification.DeliveryOutcome{Delivered: false, Error: err.Error()}
	}
	return s.fanout.AnnouncementCreated(ctx, title, recipientIDs)
}

func (s *service) GetAll(ctx context.Context) ([]AnnouncementResponse, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]AnnouncementResponse, len(list))
	for i, a := range list {
		resp[i] = mapToResponse(a)
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return announcementerrors.ErrInvalidAnnouncementID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return announcementerrors.ErrAnnouncementNotFound
		}
		return err
	}

	s.logger.Info("delete announcement success", zap.String("announcement_id", id))
	return nil
}

func mapToResponse(a Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        a.ID.String(),
		Title:     a.Title,
		Content:   a.Content,
		Type:      a.Type,
		CreatedBy: a.CreatedBy.String(),
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
