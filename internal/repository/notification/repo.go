package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/timetrackly/notifier/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNoNotificationsFound = errors.New("no notifications found")
)

const notificationColumns = `
	id, employer_id, recipient_email, subject, message_body,
	scheduled_at, status, attempts, last_attempt_error, sent_at,
	created_at, updated_at
`

// Repository provides methods to interact with the scheduled_notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateNotification inserts a new pending notification and returns its ID.
func (r *Repository) CreateNotification(ctx context.Context, n model.Notification) (uuid.UUID, error) {
	query := `
		INSERT INTO scheduled_notifications (
		    employer_id, recipient_email, subject, message_body, scheduled_at, status
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query, n.EmployerID, n.RecipientEmail, n.Subject, n.MessageBody, n.ScheduledAt, model.StatusPending,
	).Scan(&n.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return n.ID, nil
}

// GetNotificationByID retrieves a single notification by its ID.
func (r *Repository) GetNotificationByID(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM scheduled_notifications
		WHERE id = $1;
    `

	n, err := scanNotification(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, ErrNotificationNotFound
		}

		return model.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// GetNotificationStatusByID retrieves the status of a notification by its ID.
func (r *Repository) GetNotificationStatusByID(ctx context.Context, id uuid.UUID) (model.Status, error) {
	query := `
		SELECT status
		FROM scheduled_notifications
		WHERE id = $1;
    `

	var status model.Status
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotificationNotFound
		}

		return "", fmt.Errorf("failed to get notification status: %w", err)
	}

	return status, nil
}

// GetAllNotifications retrieves all notifications ordered by ScheduledAt descending.
func (r *Repository) GetAllNotifications(ctx context.Context) ([]model.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM scheduled_notifications
		ORDER BY scheduled_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all notifications: %w", err)
	}
	defer rows.Close()

	notifications, err := collectNotifications(rows)
	if err != nil {
		return nil, err
	}

	if len(notifications) == 0 {
		return nil, ErrNoNotificationsFound
	}

	return notifications, nil
}

// ListPendingByEmployer retrieves every pending notification owned by an employer.
func (r *Repository) ListPendingByEmployer(ctx context.Context, employerID uuid.UUID) ([]model.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM scheduled_notifications
		WHERE employer_id = $1 AND status = $2
		ORDER BY scheduled_at;
    `

	rows, err := r.db.QueryContext(ctx, query, employerID, model.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending notifications: %w", err)
	}
	defer rows.Close()

	return collectNotifications(rows)
}

// ClaimDueBatch atomically transitions up to limit due pending notifications
// to processing and returns the claimed rows. The conditional update is a
// compare-and-swap on status, so two overlapping runs can never both claim
// the same row; SKIP LOCKED keeps concurrent claimers from blocking each other.
func (r *Repository) ClaimDueBatch(ctx context.Context, now time.Time, limit int) ([]model.Notification, error) {
	query := `
		UPDATE scheduled_notifications
		SET status = $1, updated_at = now()
		WHERE id IN (
		    SELECT id
		    FROM scheduled_notifications
		    WHERE status = $2 AND scheduled_at <= $3
		    ORDER BY scheduled_at
		    LIMIT $4
		    FOR UPDATE SKIP LOCKED
		)
		AND status = $2
		RETURNING ` + notificationColumns + `;
    `

	rows, err := r.db.QueryContext(ctx, query, model.StatusProcessing, model.StatusPending, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to claim due notifications: %w", err)
	}
	defer rows.Close()

	return collectNotifications(rows)
}

// Reschedule moves a pending notification to a new instant and resets its
// attempt counter. Records that have already left the pending state are
// never touched.
func (r *Repository) Reschedule(ctx context.Context, id uuid.UUID, newTime time.Time) error {
	query := `
		UPDATE scheduled_notifications
		SET scheduled_at = $1, attempts = 0, updated_at = now()
		WHERE id = $2 AND status = $3;
    `

	return r.execGuarded(ctx, query, newTime, id, model.StatusPending)
}

// CancelPending transitions a notification from pending to
// cancelled_by_setting_change. It is a no-op error for records in any
// other state.
func (r *Repository) CancelPending(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE scheduled_notifications
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3;
    `

	return r.execGuarded(ctx, query, model.StatusCancelled, id, model.StatusPending)
}

// MarkSent records a successful delivery attempt for a claimed notification.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	query := `
		UPDATE scheduled_notifications
		SET status = $1, attempts = attempts + 1, last_attempt_error = NULL, sent_at = $2, updated_at = now()
		WHERE id = $3 AND status = $4;
    `

	return r.execGuarded(ctx, query, model.StatusSent, sentAt, id, model.StatusProcessing)
}

// MarkFailed records a failed delivery attempt for a claimed notification.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, lastErr string) error {
	query := `
		UPDATE scheduled_notifications
		SET status = $1, attempts = attempts + 1, last_attempt_error = $2, updated_at = now()
		WHERE id = $3 AND status = $4;
    `

	return r.execGuarded(ctx, query, model.StatusFailed, lastErr, id, model.StatusProcessing)
}

func (r *Repository) execGuarded(ctx context.Context, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanNotification(row rowScanner) (model.Notification, error) {
	var (
		n       model.Notification
		lastErr sql.NullString
		sentAt  sql.NullTime
	)

	err := row.Scan(
		&n.ID, &n.EmployerID, &n.RecipientEmail, &n.Subject, &n.MessageBody,
		&n.ScheduledAt, &n.Status, &n.Attempts, &lastErr, &sentAt,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return model.Notification{}, err
	}

	n.LastAttemptError = lastErr.String
	if sentAt.Valid {
		t := sentAt.Time
		n.SentAt = &t
	}

	return n, nil
}

func collectNotifications(rows *sql.Rows) ([]model.Notification, error) {
	var notifications []model.Notification

	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
