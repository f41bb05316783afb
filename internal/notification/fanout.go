package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go-portal/internal/events"
	"go-portal/internal/messaging/kafka"
	"go-portal/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	linkFeed    = "/app"
	linkHistory = "/app/history"
)

// Fanout translates a domain event into notification rows. Every method is
// best-effort relative to the triggering transition: it returns an outcome,
// never an error that could abort the caller.
type Fanout interface {
	LeaveDecided(ctx context.Context, recipientID uuid.UUID, leaveType, status string) DeliveryOutcome
	ReportDecided(ctx context.Context, recipientID uuid.UUID, reportTitle, status string) DeliveryOutcome
	AnnouncementCreated(ctx context.Context, announcementTitle string, recipientIDs []uuid.UUID) DeliveryOutcome
}

type fanout struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewFanout(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Fanout {
	l := zap.L().Named("notification.fanout")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.fanout")
	}
	return &fanout{db: db, repo: repo, outbox: outbox, logger: l}
}

func (f *fanout) LeaveDecided(ctx context.Context, recipientID uuid.UUID, leaveType, status string) DeliveryOutcome {
	link := linkFeed
	n := Notification{
		ID:      uuid.New(),
		UserID:  recipientID,
		Title:   fmt.Sprintf("Leave Request %s", status),
		Message: fmt.Sprintf("Your %s request has been %s.", strings.ToLower(leaveType), strings.ToLower(status)),
		Type:    TypeLeaveRequest,
		Link:    &link,
	}
	return f.deliver(ctx, []Notification{n})
}

func (f *fanout) ReportDecided(ctx context.Context, recipientID uuid.UUID, reportTitle, status string) DeliveryOutcome {
	link := linkHistory
	n := Notification{
		ID:      uuid.New(),
		UserID:  recipientID,
		Title:   fmt.Sprintf("Report %s", status),
		Message: fmt.Sprintf("Your report %q has been %s.", reportTitle, strings.ToLower(status)),
		Type:    TypeReportStatus,
		Link:    &link,
	}
	return f.deliver(ctx, []Notification{n})
}

func (f *fanout) AnnouncementCreated(ctx context.Context, announcementTitle string, recipientIDs []uuid.UUID) DeliveryOutcome {
	link := linkFeed
	ns := make([]Notification, 0, len(recipientIDs))
	for _, rid := range recipientIDs {
		ns = append(ns, Notification{
			ID:      uuid.New(),
			UserID:  rid,
			Title:   "New Announcement",
			Message: announcementTitle,
			Type:    TypeAnnouncement,
			Link:    &link,
		})
	}
	return f.deliver(ctx, ns)
}

// deliver writes the notification rows, then their change-feed outbox events.
// The outbox inserts share one transaction; the row insert commits on its own.
// A failed outbox write therefore leaves rows without a push event — clients
// still see those rows on their next fetch.
func (f *fanout) deliver(ctx context.Context, ns []Notification) DeliveryOutcome {
	if len(ns) == 0 {
		return DeliveryOutcome{Delivered: true, Count: 0}
	}

	tx, err := f.db.BeginTx(ctx, nil)
	if err != nil {
		return f.failed(ctx, ns, err)
	}
	defer tx.Rollback()

	qtx := f.repo.WithTx(tx)
	if err := qtx.CreateBatch(ctx, ns); err != nil {
		return f.failed(ctx, ns, err)
	}

	if f.outbox != nil {
		outboxTx := f.outbox.WithTx(tx)
		rid := contextutil.GetRequestID(ctx)
		for _, n := range ns {
			payload, err := json.Marshal(events.NotificationCreatedEvent{
				EventType:      "notification_created",
				NotificationID: n.ID.String(),
				UserID:         n.UserID.String(),
				Type:           n.Type,
				Title:          n.Title,
				OccurredAt:     time.Now().UTC(),
			})
			if err != nil {
				return f.failed(ctx, ns, err)
			}

			event := kafka.OutboxEvent{
				ID:            uuid.New().String(),
				RequestID:     rid,
				AggregateType: "notification",
				AggregateID:   n.ID.String(),
				EventType:     "notification_created",
				Topic:         events.NotificationCreatedTopic,
				Payload:       payload,
				Status:        kafka.OutboxStatusPending,
			}
			if err := outboxTx.Create(ctx, event); err != nil {
				return f.failed(ctx, ns, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return f.failed(ctx, ns, err)
	}

	return DeliveryOutcome{Delivered: true, Count: len(ns)}
}

func (f *fanout) failed(ctx context.Context, ns []Notification, err error) DeliveryOutcome {
	f.logger.Warn("notification fanout failed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("recipients", len(ns)),
		zap.String("type", ns[0].Type),
		zap.Error(err),
	)
	return DeliveryOutcome{Delivered: false, Error: err.Error()}
}
