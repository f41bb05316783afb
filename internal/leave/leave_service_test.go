package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-portal/internal/domain"
	"go-portal/internal/employee"
	"go-portal/internal/leave"
	leaveerrors "go-portal/internal/leave/errors"
	"go-portal/internal/notification"
	"go-portal/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	withTxFn          func(tx *sql.Tx) leave.Repository
	createFn          func(ctx context.Context, l *leave.LeaveRequest) error
	findAllFn         func(ctx context.Context) ([]leave.LeaveRequest, error)
	findByEmployeeFn  func(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error)
	findByApproverFn  func(ctx context.Context, approverID string) ([]leave.LeaveRequest, error)
	findByIDFn        func(ctx context.Context, id string) (*leave.LeaveRequest, error)
	decideIfPendingFn func(ctx context.Context, id, status string, approverID uuid.UUID, decidedAt time.Time) (int64, error)
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.LeaveRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByApprover(ctx context.Context, approverID string) ([]leave.LeaveRequest, error) {
	if f.findByApproverFn != nil {
		return f.findByApproverFn(ctx, approverID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) DecideIfPending(ctx context.Context, id, status string, approverID uuid.UUID, decidedAt time.Time) (int64, error) {
	if f.decideIfPendingFn != nil {
		return f.decideIfPendingFn(ctx, id, status, approverID, decidedAt)
	}
	return 1, nil
}

type fakeEmployeeRepository struct {
	findByIDFn                    func(ctx context.Context, id string) (*employee.Employee, error)
	findTeamLeadersByDepartmentFn func(ctx context.Context, department string) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindTeamLeadersByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	if f.findTeamLeadersByDepartmentFn != nil {
		return f.findTeamLeadersByDepartmentFn(ctx, department)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindActiveIDs(ctx context.Context) ([]uuid.UUID, error) {
	return nil, nil
}
func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error            { return nil }

type fakeFanout struct {
	leaveDecidedFn func(ctx context.Context, recipientID uuid.UUID, leaveType, status string) notification.DeliveryOutcome
}

func (f *fakeFanout) LeaveDecided(ctx context.Context, recipientID uuid.UUID, leaveType, status string) notification.DeliveryOutcome {
	if f.leaveDecidedFn != nil {
		return f.leaveDecidedFn(ctx, recipientID, leaveType, status)
	}
	return notification.DeliveryOutcome{Delivered: true, Count: 1}
}

func (f *fakeFanout) ReportDecided(ctx context.Context, recipientID uuid.UUID, reportTitle, status string) notification.DeliveryOutcome {
	return notification.DeliveryOutcome{Delivered: true, Count: 1}
}

func (f *fakeFanout) AnnouncementCreated(ctx context.Context, announcementTitle string, recipientIDs []uuid.UUID) notification.DeliveryOutcome {
	return notification.DeliveryOutcome{Delivered: true, Count: len(recipientIDs)}
}

type leaveServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   leave.Service
	repo      *fakeLeaveRepository
	employees *fakeEmployeeRepository
	fanout    *fakeFanout
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeLeaveRepository{}
	employees := &fakeEmployeeRepository{}
	fanout := &fakeFanout{}
	svc := leave.NewService(db, repo, employees, fanout)

	return &leaveServiceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		employees: employees,
		fanout:    fanout,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func activeEmployee(id uuid.UUID, department string, isTeamLeader bool) *employee.Employee {
	return &employee.Employee{
		ID:           id,
		FullName:     "Test Employee",
		Email:        "test@example.com",
		Department:   department,
		IsTeamLeader: isTeamLeader,
		Status:       employee.StatusActive,
	}
}

func TestLeaveService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("success routed to department team leader", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		requesterID := uuid.New()
		leaderID := uuid.New()
		actor := domain.Actor{ID: requesterID, Department: "Engineering"}

		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			assert.Equal(t, requesterID.String(), id)
			return activeEmployee(requesterID, "Engineering", false), nil
		}
		deps.employees.findTeamLeadersByDepartmentFn = func(ctx context.Context, department string) ([]employee.Employee, error) {
			assert.Equal(t, "Engineering", department)
			return []employee.Employee{
				*activeEmployee(leaderID, "Engineering", true),
				*activeEmployee(uuid.New(), "Engineering", true),
			}, nil
		}
		deps.repo.createFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			assert.Equal(t, requesterID, l.EmployeeID)
			assert.NotNil(t, l.ApproverID)
			assert.Equal(t, leaderID, *l.ApproverID)
			assert.Equal(t, leave.StatusPending, l.Status)
			return nil
		}

		resp, err := deps.service.Submit(ctx, actor, leave.CreateLeaveRequest{
			LeaveType: "Annual",
			StartDate: "2026-09-07",
			EndDate:   "2026-09-11",
			Reason:    "Family trip",
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.NotNil(t, resp.ApproverID)
		assert.Equal(t, leaderID.String(), *resp.ApproverID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("team leader request escalates to admin tier", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		leaderID := uuid.New()
		actor := domain.Actor{ID: leaderID, Department: "Engineering", IsTeamLeader: true}

		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return activeEmployee(leaderID, "Engineering", true), nil
		}
		deps.employees.findTeamLeadersByDepartmentFn = func(ctx context.Context, department string) ([]employee.Employee, error) {
			t.Fatal("leader lookup must not run for a team leader requester")
			return nil, nil
		}
		deps.repo.createFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			assert.Nil(t, l.ApproverID)
			return nil
		}

		resp, err := deps.service.Submit(ctx, actor, leave.CreateLeaveRequest{
			LeaveType: "Sick",
			StartDate: "2026-09-01",
			EndDate:   "2026-09-01",
		})

		assert.NoError(t, err)
		assert.Nil(t, resp.ApproverID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("department without leader falls back to admin tier", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		requesterID := uuid.New()
		actor := domain.Actor{ID: requesterID, Department: "Finance"}

		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return activeEmployee(requesterID, "Finance", false), nil
		}
		deps.employees.findTeamLeadersByDepartmentFn = func(ctx context.Context, department string) ([]employee.Employee, error) {
			return nil, nil
		}
		deps.repo.createFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			assert.Nil(t, l.ApproverID)
			return nil
		}

		resp, err := deps.service.Submit(ctx, actor, leave.CreateLeaveRequest{
			LeaveType: "Casual",
			StartDate: "2026-10-01",
			EndDate:   "2026-10-02",
		})

		assert.NoError(t, err)
		assert.Nil(t, resp.ApproverID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative leader lookup failure aborts submission", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		requesterID := uuid.New()
		actor := domain.Actor{ID: requesterID, Department: "Engineering"}

		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return activeEmployee(requesterID, "Engineering", false), nil
		}
		deps.employees.findTeamLeadersByDepartmentFn = func(ctx context.Context, department string) ([]employee.Employee, error) {
			return nil, errors.New("connection refused")
		}
		deps.repo.createFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			t.Fatal("nothing must be written when routing fails")
			return nil
		}

		_, err := deps.service.Submit(ctx, actor, leave.CreateLeaveRequest{
			LeaveType: "Annual",
			StartDate: "2026-09-07",
			EndDate:   "2026-09-11",
		})

		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeServiceUnavailable, appErr.Code)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid date range", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		actor := domain.Actor{ID: uuid.New()}

		_, err := deps.service.Submit(ctx, actor, leave.CreateLeaveRequest{
			LeaveType: "Annual",
			StartDate: "2026-09-11",
			EndDate:   "2026-09-07",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})
}

func TestLeaveService_Decide(t *testing.T) {
	ctx := context.Background()

	pendingLeave := func(id, employeeID uuid.UUID, approverID *uuid.UUID) *leave.LeaveRequest {
		return &leave.LeaveRequest{
			ID:         id,
			EmployeeID: employeeID,
			LeaveType:  "Annual",
			StartDate:  time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC),
			ApproverID: approverID,
			Status:     leave.StatusPending,
		}
	}

	t.Run("success assigned approver approves and employee is notified", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		leaveID := uuid.New()
		employeeID := uuid.New()
		approverID := uuid.New()
		actor := domain.Actor{ID: approverID, IsTeamLeader: true}

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return pendingLeave(leaveID, employeeID, &approverID), nil
		}
		deps.repo.decideIfPendingFn = func(ctx context.Context, id, status string, aid uuid.UUID, decidedAt time.Time) (int64, error) {
			assert.Equal(t, leaveID.String(), id)
			assert.Equal(t, leave.StatusApproved, status)
			assert.Equal(t, approverID, aid)
			return 1, nil
		}
		deps.fanout.leaveDecidedFn = func(ctx context.Context, recipientID uuid.UUID, leaveType, status string) notification.DeliveryOutcome {
			assert.Equal(t, employeeID, recipientID)
			assert.Equal(t, "Annual", leaveType)
			assert.Equal(t, leave.StatusApproved, status)
			return notification.DeliveryOutcome{Delivered: true, Count: 1}
		}

		resp, err := deps.service.Approve(ctx, actor, leaveID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Leave.Status)
		assert.True(t, resp.Notification.Delivered)
		assert.Equal(t, 1, resp.Notification.Count)
	})

	t.Run("success admin decides request without approver", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		leaveID := uuid.New()
		actor := domain.Actor{ID: uuid.New(), IsAdmin: true}

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return pendingLeave(leaveID, uuid.New(), nil), nil
		}

		resp, err := deps.service.Reject(ctx, actor, leaveID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Leave.Status)
	})

	t.Run("negative non-assigned leader is rejected", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		leaveID := uuid.New()
		assignedID := uuid.New()
		actor := domain.Actor{ID: uuid.New(), IsTeamLeader: true}

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return pendingLeave(leaveID, uuid.New(), &assignedID), nil
		}
		deps.repo.decideIfPendingFn = func(ctx context.Context, id, status string, aid uuid.UUID, decidedAt time.Time) (int64, error) {
			t.Fatal("update must not run for an unauthorized actor")
			return 0, nil
		}

		_, err := deps.service.Approve(ctx, actor, leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrNotAssignedApprover)
	})

	t.Run("negative non-admin cannot decide admin-tier request", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		leaveID := uuid.New()
		actor := domain.Actor{ID: uuid.New(), IsTeamLeader: true}

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return pendingLeave(leaveID, uuid.New(), nil), nil
		}

		_, err := deps.service.Approve(ctx, actor, leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrNotAssignedApprover)
	})

	t.Run("negative already decided request", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		leaveID := uuid.New()
		approverID := uuid.New()
		actor := domain.Actor{ID: approverID, IsTeamLeader: true}

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			l := pendingLeave(leaveID, uuid.New(), &approverID)
			l.Status = leave.StatusApproved
			return l, nil
		}

		_, err := deps.service.Reject(ctx, actor, leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})

	t.Run("negative race loser gets invalid transition", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		leaveID := uuid.New()
		approverID := uuid.New()
		actor := domain.Actor{ID: approverID, IsTeamLeader: true}

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return pendingLeave(leaveID, uuid.New(), &approverID), nil
		}
		// Another decision landed between the read and the conditional update.
		deps.repo.decideIfPendingFn = func(ctx context.Context, id, status string, aid uuid.UUID, decidedAt time.Time) (int64, error) {
			return 0, nil
		}
		deps.fanout.leaveDecidedFn = func(ctx context.Context, recipientID uuid.UUID, leaveType, status string) notification.DeliveryOutcome {
			t.Fatal("no notification for a lost race")
			return notification.DeliveryOutcome{}
		}

		_, err := deps.service.Approve(ctx, actor, leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})

	t.Run("fanout failure does not abort the decision", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		leaveID := uuid.New()
		approverID := uuid.New()
		actor := domain.Actor{ID: approverID, IsTeamLeader: true}

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return pendingLeave(leaveID, uuid.New(), &approverID), nil
		}
		deps.fanout.leaveDecidedFn = func(ctx context.Context, recipientID uuid.UUID, leaveType, status string) notification.DeliveryOutcome {
			return notification.DeliveryOutcome{Delivered: false, Error: "notification store unavailable"}
		}

		resp, err := deps.service.Approve(ctx, actor, leaveID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Leave.Status)
		assert.False(t, resp.Notification.Delivered)
		assert.Equal(t, "notification store unavailable", resp.Notification.Error)
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		actor := domain.Actor{ID: uuid.New(), IsAdmin: true}

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Approve(ctx, actor, uuid.New().String())

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("negative invalid id", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		actor := domain.Actor{ID: uuid.New(), IsAdmin: true}

		_, err := deps.service.Approve(ctx, actor, "not-a-uuid")

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveID)
	})
}

func TestLeaveService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("admin sees everything", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.repo.findAllFn = func(ctx context.Context) ([]leave.LeaveRequest, error) {
			return []leave.LeaveRequest{
				{ID: uuid.New(), EmployeeID: uuid.New(), LeaveType: "Annual", Status: leave.StatusPending},
				{ID: uuid.New(), EmployeeID: uuid.New(), LeaveType: "Sick", Status: leave.StatusApproved},
			}, nil
		}

		resp, err := deps.service.GetAll(ctx, domain.Actor{ID: uuid.New(), IsAdmin: true})

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("team leader sees assigned queue", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		leaderID := uuid.New()
		deps.repo.findByApproverFn = func(ctx context.Context, approverID string) ([]leave.LeaveRequest, error) {
			assert.Equal(t, leaderID.String(), approverID)
			return []leave.LeaveRequest{
				{ID: uuid.New(), EmployeeID: uuid.New(), ApproverID: &leaderID, Status: leave.StatusPending},
			}, nil
		}

		resp, err := deps.service.GetAll(ctx, domain.Actor{ID: leaderID, IsTeamLeader: true})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("employee sees own requests only", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		employeeID := uuid.New()
		deps.repo.findByEmployeeFn = func(ctx context.Context, eid string) ([]leave.LeaveRequest, error) {
			assert.Equal(t, employeeID.String(), eid)
			return nil, nil
		}

		resp, err := deps.service.GetAll(ctx, domain.Actor{ID: employeeID})

		assert.NoError(t, err)
		assert.Len(t, resp, 0)
	})
}

// Full lifecycle: an employee submits, the routed team leader approves, a
// second decision attempt bounces off the terminal state.
func TestLeaveService_SubmitThenDecideFlow(t *testing.T) {
	ctx := context.Background()
	deps := setupLeaveServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	employeeID := uuid.New()
	leaderID := uuid.New()
	var stored *leave.LeaveRequest

	deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return activeEmployee(employeeID, "Engineering", false), nil
	}
	deps.employees.findTeamLeadersByDepartmentFn = func(ctx context.Context, department string) ([]employee.Employee, error) {
		return []employee.Employee{*activeEmployee(leaderID, "Engineering", true)}, nil
	}
	deps.repo.createFn = func(ctx context.Context, l *leave.LeaveRequest) error {
		cp := *l
		stored = &cp
		return nil
	}
	deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
		if stored == nil || stored.ID.String() != id {
			return nil, gorm.ErrRecordNotFound
		}
		cp := *stored
		return &cp, nil
	}
	deps.repo.decideIfPendingFn = func(ctx context.Context, id, status string, aid uuid.UUID, decidedAt time.Time) (int64, error) {
		if stored.Status != leave.StatusPending {
			return 0, nil
		}
		stored.Status = status
		stored.ApproverID = &aid
		stored.DecidedAt = &decidedAt
		return 1, nil
	}

	var notified []string
	deps.fanout.leaveDecidedFn = func(ctx context.Context, recipientID uuid.UUID, leaveType, status string) notification.DeliveryOutcome {
		notified = append(notified, recipientID.String()+":"+status)
		return notification.DeliveryOutcome{Delivered: true, Count: 1}
	}

	submitted, err := deps.service.Submit(ctx, domain.Actor{ID: employeeID, Department: "Engineering"}, leave.CreateLeaveRequest{
		LeaveType: "Annual",
		StartDate: "2026-09-07",
		EndDate:   "2026-09-11",
		Reason:    "Family trip",
	})
	assert.NoError(t, err)
	assert.Equal(t, leaderID.String(), *submitted.ApproverID)

	leader := domain.Actor{ID: leaderID, IsTeamLeader: true}
	decided, err := deps.service.Approve(ctx, leader, submitted.ID)
	assert.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, decided.Leave.Status)
	assert.Equal(t, []string{employeeID.String() + ":" + leave.StatusApproved}, notified)

	// Second attempt hits the terminal state.
	_, err = deps.service.Reject(ctx, leader, submitted.ID)
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	assert.Len(t, notified, 1)

	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
