package announcement_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-portal/internal/announcement"
	announcementerrors "go-portal/internal/announcement/errors"
	"go-portal/internal/domain"
	"go-portal/internal/employee"
	"go-portal/internal/notification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAnnouncementRepository struct {
	withTxFn   func(tx *sql.Tx) announcement.Repository
	createFn   func(ctx context.Context, a *announcement.Announcement) error
	findAllFn  func(ctx context.Context) ([]announcement.Announcement, error)
	findByIDFn func(ctx context.Context, id string) (*announcement.Announcement, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeAnnouncementRepository) WithTx(tx *sql.Tx) announcement.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeAnnouncementRepository) Create(ctx context.Context, a *announcement.Announcement) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeAnnouncementRepository) FindAll(ctx context.Context) ([]announcement.Announcement, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeAnnouncementRepository) FindByID(ctx context.Context, id string) (*announcement.Announcement, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAnnouncementRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeEmployeeRepository struct {
	findActiveIDsFn func(ctx context.Context) ([]uuid.UUID, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepository) FindTeamLeadersByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) FindActiveIDs(ctx context.Context) ([]uuid.UUID, error) {
	if f.findActiveIDsFn != nil {
		return f.findActiveIDsFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error            { return nil }

type fakeFanout struct {
	announcementCreatedFn func(ctx context.Context, announcementTitle string, recipientIDs []uuid.UUID) notification.DeliveryOutcome
}

func (f *fakeFanout) LeaveDecided(ctx context.Context, recipientID uuid.UUID, leaveType, status string) notification.DeliveryOutcome {
	return notification.DeliveryOutcome{Delivered: true, Count: 1}
}

func (f *fakeFanout) ReportDecided(ctx context.Context, recipientID uuid.UUID, reportTitle, status string) notification.DeliveryOutcome {
	return notification.DeliveryOutcome{Delivered: true, Count: 1}
}

func (f *fakeFanout) AnnouncementCreated(ctx context.Context, announcementTitle string, recipientIDs []uuid.UUID) notification.DeliveryOutcome {
	if f.announcementCreatedFn != nil {
		return f.announcementCreatedFn(ctx, announcementTitle, recipientIDs)
	}
	return notification.DeliveryOutcome{Delivered: true, Count: len(recipientIDs)}
}

type announcementServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   announcement.Service
	repo      *fakeAnnouncementRepository
	employees *fakeEmployeeRepository
	fanout    *fakeFanout
}

func setupAnnouncementServiceTest(t *testing.T) *announcementServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeAnnouncementRepository{}
	employees := &fakeEmployeeRepository{}
	fanout := &fakeFanout{}
	svc := announcement.NewService(db, repo, employees, fanout)

	return &announcementServiceDeps{
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

func TestAnnouncementService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success broadcasts to every active employee", func(t *testing.T) {
		deps := setupAnnouncementServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		admin := domain.Actor{ID: uuid.New(), IsAdmin: true}
		recipients := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

		deps.employees.findActiveIDsFn = func(ctx context.Context) ([]uuid.UUID, error) {
			return recipients, nil
		}
		deps.repo.createFn = func(ctx context.Context, a *announcement.Announcement) error {
			assert.Equal(t, announcement.TypeImportant, a.Type)
			return nil
		}
		deps.fanout.announcementCreatedFn = func(ctx context.Context, title string, ids []uuid.UUID) notification.DeliveryOutcome {
			assert.Equal(t, "Office closed Friday", title)
			assert.Equal(t, recipients, ids)
			return notification.DeliveryOutcome{Delivered: true, Count: len(ids)}
		}

		resp, err := deps.service.Create(ctx, admin, announcement.CreateAnnouncementRequest{
			Title:   "Office closed Friday",
			Content: "Building maintenance.",
			Type:    announcement.TypeImportant,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Office closed Friday", resp.Announcement.Title)
		assert.Equal(t, announcement.TypeImportant, resp.Announcement.Type)
		assert.Equal(t, admin.ID.String(), resp.Announcement.CreatedBy)
		assert.True(t, resp.Notification.Delivered)
		assert.Equal(t, 3, resp.Notification.Count)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("omitted type defaults to General", func(t *testing.T) {
		deps := setupAnnouncementServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.createFn = func(ctx context.Context, a *announcement.Announcement) error {
			assert.Equal(t, announcement.TypeGeneral, a.Type)
			return nil
		}

		resp, err := deps.service.Create(ctx, domain.Actor{ID: uuid.New(), IsAdmin: true}, announcement.CreateAnnouncementRequest{
			Title:   "Cafeteria menu updated",
			Content: "New vendor starting Monday.",
		})

		assert.NoError(t, err)
		assert.Equal(t, announcement.TypeGeneral, resp.Announcement.Type)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("recipient lookup failure keeps announcement", func(t *testing.T) {
		deps := setupAnnouncementServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		admin := domain.Actor{ID: uuid.New(), IsAdmin: true}
		deps.employees.findActiveIDsFn = func(ctx context.Context) ([]uuid.UUID, error) {
			return nil, errors.New("connection refused")
		}

		resp, err := deps.service.Create(ctx, admin, announcement.CreateAnnouncementRequest{
			Title:   "Office closed Friday",
			Content: "Building maintenance.",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Office closed Friday", resp.Announcement.Title)
		assert.False(t, resp.Notification.Delivered)
		assert.Contains(t, resp.Notification.Error, "connection refused")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative persist failure", func(t *testing.T) {
		deps := setupAnnouncementServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.createFn = func(ctx context.Context, a *announcement.Announcement) error {
			return errors.New("insert failed")
		}
		deps.fanout.announcementCreatedFn = func(ctx context.Context, title string, ids []uuid.UUID) notification.DeliveryOutcome {
			t.Fatal("no broadcast for a failed insert")
			return notification.DeliveryOutcome{}
		}

		_, err := deps.service.Create(ctx, domain.Actor{ID: uuid.New(), IsAdmin: true}, announcement.CreateAnnouncementRequest{
			Title:   "Office closed Friday",
			Content: "Building maintenance.",
		})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAnnouncementService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupAnnouncementServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()
		deps.repo.deleteFn = func(ctx context.Context, targetID string) error {
			assert.Equal(t, id, targetID)
			return nil
		}

		assert.NoError(t, deps.service.Delete(ctx, id))
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupAnnouncementServiceTest(t)
		defer deps.db.Close()

		deps.repo.deleteFn = func(ctx context.Context, targetID string) error {
			return gorm.ErrRecordNotFound
		}

		err := deps.service.Delete(ctx, uuid.New().String())

		assert.ErrorIs(t, err, announcementerrors.ErrAnnouncementNotFound)
	})

	t.Run("negative invalid id", func(t *testing.T) {
		deps := setupAnnouncementServiceTest(t)
		defer deps.db.Close()

		err := deps.service.Delete(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, announcementerrors.ErrInvalidAnnouncementID)
	})
}
