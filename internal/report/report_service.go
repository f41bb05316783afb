package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-portal/internal/domain"
	"go-portal/internal/notification"
	reporterrors "go-portal/internal/report/errors"
	"go-portal/internal/shared/apperror"
	"go-portal/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Submit(ctx context.Context, actor domain.Actor, req CreateReportRequest) (ReportResponse, error)
	GetAll(ctx context.Context, actor domain.Actor) ([]ReportResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (ReportResponse, error)
	Approve(ctx context.Context, actor domain.Actor, id string) (DecisionResponse, error)
	Reject(ctx context.Context, actor domain.Actor, id string) (DecisionResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	counters counter.Repository
	fanout   notification.Fanout
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counters counter.Repository,
	fanout notification.Fanout,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{db: db, repo: repo, counters: counters, fanout: fanout, logger: l}
}

func (s *service) Submit(ctx context.Context, actor domain.Actor, req CreateReportRequest) (ReportResponse, error) {
	s.logger.Debug("submit report requested",
		zap.String("employee_id", actor.ID.String()),
		zap.String("title", req.Title),
	)

	seq, err := s.counters.GetNextValue(ctx, CounterType)
	if err != nil {
		s.logger.Error("submit report counter failed", zap.Error(err))
		return ReportResponse{}, apperror.Wrap(err,
			apperror.CodeServiceUnavailable,
			"could not allocate reference number",
			apperror.ErrDependencyFailure.HTTPStatus,
		)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit report begin tx failed", zap.Error(err))
		return ReportResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rep := &Report{
		ID:              uuid.New(),
		EmployeeID:      actor.ID,
		ReferenceNumber: fmt.Sprintf("REP-%05d", seq),
		Title:           req.Title,
		Type:            req.Type,
		Content:         req.Content,
		ProofURL:        req.ProofURL,
		Status:          StatusPending,
	}

	if err := qtx.Create(ctx, rep); err != nil {
		s.logger.Error("submit report persist failed", zap.Error(err))
		return ReportResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit report commit failed", zap.Error(err))
		return ReportResponse{}, err
	}

	s.logger.Info("submit report success",
		zap.String("report_id", rep.ID.String()),
		zap.String("reference_number", rep.ReferenceNumber),
	)

	return mapToResponse(*rep), nil
}

func (s *service) GetAll(ctx context.Context, actor domain.Actor) ([]ReportResponse, error) {
	var (
		reports []Report
		err     error
	)
	if actor.IsAdmin {
		reports, err = s.repo.FindAll(ctx)
	} else {
		reports, err = s.repo.FindByEmployee(ctx, actor.ID.String())
	}
	if err != nil {
		return nil, err
	}

	resp := make([]ReportResponse, len(reports))
	for i, rep := range reports {
		resp[i] = mapToResponse(rep)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (ReportResponse, error) {
	rep, err := s.findByID(ctx, id)
	if err != nil {
		return ReportResponse{}, err
	}

	if !actor.IsAdmin && rep.EmployeeID != actor.ID {
		return ReportResponse{}, reporterrors.ErrNotReportOwner
	}

	return mapToResponse(*rep), nil
}

func (s *service) Approve(ctx context.Context, actor domain.Actor, id string) (DecisionResponse, error) {
	return s.decide(ctx, actor, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, actor domain.Actor, id string) (DecisionResponse, error) {
	return s.decide(ctx, actor, id, StatusRejected)
}

// Reports always escalate to the admin tier; ownership plays no role in the
// decision guard.
func (s *service) decide(ctx context.Context, actor domain.Actor, id, targetStatus string) (DecisionResponse, error) {
	rep, err := s.findByID(ctx, id)
	if err != nil {
		return DecisionResponse{}, err
	}

	if rep.Status != StatusPending {
		s.logger.Warn("decide report already terminal",
			zap.String("report_id", id),
			zap.String("status", rep.Status),
		)
		return DecisionResponse{}, reporterrors.ErrInvalidStatusTransition
	}

	// Guard: only admins decide reports, regardless of what the route layer
	// already enforced.
	if !actor.IsAdmin {
		s.logger.Warn("decide report forbidden",
			zap.String("report_id", id),
			zap.String("actor_id", actor.ID.String()),
		)
		return DecisionResponse{}, reporterrors.ErrNotReportApprover
	}

	decidedAt := time.Now().UTC()
	rows, err := s.repo.DecideIfPending(ctx, id, targetStatus, actor.ID, decidedAt)
	if err != nil {
		s.logger.Error("decide report persist failed",
			zap.String("report_id", id),
			zap.Error(err),
		)
		return DecisionResponse{}, err
	}
	if rows == 0 {
		return DecisionResponse{}, reporterrors.ErrInvalidStatusTransition
	}

	rep.Status = targetStatus
	approverID := actor.ID
	rep.ApproverID = &approverID
	rep.DecidedAt = &decidedAt

	outcome := s.fanout.ReportDecided(ctx, rep.EmployeeID, rep.Title, targetStatus)
	if !outcome.Delivered {
		s.logger.Warn("decide report fanout failed",
			zap.String("report_id", id),
			zap.String("error", outcome.Error),
		)
	}

	s.logger.Info("decide report success",
		zap.String("report_id", id),
		zap.String("status", targetStatus),
		zap.Bool("notified", outcome.Delivered),
	)

	return DecisionResponse{
		Report:       mapToResponse(*rep),
		Notification: outcome,
	}, nil
}

func (s *service) findByID(ctx context.Context, id string) (*Report, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, reporterrors.ErrInvalidReportID
	}

	rep, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reporterrors.ErrReportNotFound
		}
		return nil, err
	}
	return rep, nil
}

func mapToResponse(rep Report) ReportResponse {
	resp := ReportResponse{
		ID:              rep.ID.String(),
		EmployeeID:      rep.EmployeeID.String(),
		ReferenceNumber: rep.ReferenceNumber,
		Title:           rep.Title,
		Type:            rep.Type,
		Content:         rep.Content,
		ProofURL:        rep.ProofURL,
		Status:          rep.Status,
		CreatedAt:       rep.CreatedAt.UTC().Format(time.RFC3339),
	}
	if rep.ApproverID != nil {
		v := rep.ApproverID.String()
		resp.ApproverID = &v
	}
	if rep.DecidedAt != nil {
		v := rep.DecidedAt.UTC().Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}
