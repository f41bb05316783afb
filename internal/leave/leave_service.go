package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-portal/internal/domain"
	"go-portal/internal/employee"
	leaveerrors "go-portal/internal/leave/errors"
	"go-portal/internal/notification"
	"go-portal/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Submit(ctx context.Context, actor domain.Actor, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, actor domain.Actor) ([]LeaveResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error)
	Approve(ctx context.Context, actor domain.Actor, id string) (DecisionResponse, error)
	Reject(ctx context.Context, actor domain.Actor, id string) (DecisionResponse, error)
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
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, employees: employees, fanout: fanout, logger: l}
}

func (s *service) Submit(ctx context.Context, actor domain.Actor, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("submit leave requested",
		zap.String("employee_id", actor.ID.String()),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("submit leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	requester, err := s.employees.FindByID(ctx, actor.ID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrRequesterNotFound
		}
		s.logger.Error("submit leave requester lookup failed", zap.Error(err))
		return LeaveResponse{}, apperror.Wrap(err,
			apperror.CodeServiceUnavailable,
			"could not load requesting employee",
			apperror.ErrDependencyFailure.HTTPStatus,
		)
	}

	// The routing decision must resolve before anything is written; a lookup
	// failure aborts the whole submission.
	approverID, err := s.resolveApprover(ctx, requester)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: requester.ID,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		ApproverID: approverID,
		Status:     StatusPending,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("submit leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", requester.ID.String()),
		zap.Bool("routed_to_admin", approverID == nil),
	)

	return mapToResponse(*l), nil
}

// resolveApprover routes a new request: team leaders escalate straight to the
// admin tier (nil approver); everyone else goes to their department's team
// leader. A department without a leader falls through to admin, which is the
// designed fallback and not an error.
func (s *service) resolveApprover(ctx context.Context, requester *employee.Employee) (*uuid.UUID, error) {
	if requester.IsTeamLeader {
		return nil, nil
	}

	leaders, err := s.employees.FindTeamLeadersByDepartment(ctx, requester.Department)
	if err != nil {
		s.logger.Error("resolve approver lookup failed",
			zap.String("department", requester.Department),
			zap.Error(err),
		)
		return nil, apperror.Wrap(err,
			apperror.CodeServiceUnavailable,
			"could not resolve approver",
			apperror.ErrDependencyFailure.HTTPStatus,
		)
	}

	if len(leaders) == 0 {
		return nil, nil
	}

	id := leaders[0].ID
	return &id, nil
}

func (s *service) GetAll(ctx context.Context, actor domain.Actor) ([]LeaveResponse, error) {
	var (
		leaves []LeaveRequest
		err    error
	)

	switch {
	case actor.IsAdmin:
		leaves, err = s.repo.FindAll(ctx)
	case actor.IsTeamLeader:
		leaves, err = s.repo.FindByApprover(ctx, actor.ID.String())
	default:
		leaves, err = s.repo.FindByEmployee(ctx, actor.ID.String())
	}
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error) {
	l, err := s.findByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	if !actor.IsAdmin && l.EmployeeID != actor.ID && !isAssignedApprover(l, actor) {
		return LeaveResponse{}, leaveerrors.ErrNotAssignedApprover
	}

	return mapToResponse(*l), nil
}

func (s *service) Approve(ctx context.Context, actor domain.Actor, id string) (DecisionResponse, error) {
	return s.decide(ctx, actor, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, actor domain.Actor, id string) (DecisionResponse, error) {
	return s.decide(ctx, actor, id, StatusRejected)
}

func (s *service) decide(ctx context.Context, actor domain.Actor, id, targetStatus string) (DecisionResponse, error) {
	s.logger.Debug("decide leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actor.ID.String()),
		zap.String("target_status", targetStatus),
	)

	l, err := s.findByID(ctx, id)
	if err != nil {
		return DecisionResponse{}, err
	}

	if l.Status != StatusPending {
		s.logger.Warn("decide leave already terminal",
			zap.String("leave_id", id),
			zap.String("status", l.Status),
		)
		return DecisionResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	// Guard: admin, or the assigned approver. A nil approver means the
	// request escalated to the admin tier.
	if !actor.IsAdmin && !isAssignedApprover(l, actor) {
		return DecisionResponse{}, leaveerrors.ErrNotAssignedApprover
	}

	decidedAt := time.Now().UTC()
	rows, err := s.repo.DecideIfPending(ctx, id, targetStatus, actor.ID, decidedAt)
	if err != nil {
		s.logger.Error("decide leave persist failed",
			zap.String("leave_id", id),
			zap.String("target_status", targetStatus),
			zap.Error(err),
		)
		return DecisionResponse{}, err
	}
	if rows == 0 {
		// Race loser: someone else decided between our read and the
		// conditional update.
		s.logger.Warn("decide leave lost conditional update",
			zap.String("leave_id", id),
			zap.String("target_status", targetStatus),
		)
		return DecisionResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	l.Status = targetStatus
	approverID := actor.ID
	l.ApproverID = &approverID
	l.DecidedAt = &decidedAt

	outcome := s.fanout.LeaveDecided(ctx, l.EmployeeID, l.LeaveType, targetStatus)
	if !outcome.Delivered {
		s.logger.Warn("decide leave fanout failed",
			zap.String("leave_id", id),
			zap.String("error", outcome.Error),
		)
	}

	s.logger.Info("decide leave success",
		zap.String("leave_id", id),
		zap.String("status", targetStatus),
		zap.Bool("notified", outcome.Delivered),
	)

	return DecisionResponse{
		Leave:        mapToResponse(*l),
		Notification: outcome,
	}, nil
}

func (s *service) findByID(ctx context.Context, id string) (*LeaveRequest, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}
	return l, nil
}

func isAssignedApprover(l *LeaveRequest, actor domain.Actor) bool {
	return l.ApproverID != nil && *l.ApproverID == actor.ID
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		Reason:     l.Reason,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if l.ApproverID != nil {
		v := l.ApproverID.String()
		resp.ApproverID = &v
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.UTC().Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}
