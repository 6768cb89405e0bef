package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/timetrackly/notifier/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type notificationRepository interface {
	CreateNotification(context.Context, model.Notification) (uuid.UUID, error)
	GetNotificationByID(context.Context, uuid.UUID) (model.Notification, error)
	GetNotificationStatusByID(context.Context, uuid.UUID) (model.Status, error)
	GetAllNotifications(context.Context) ([]model.Notification, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service implements the notification use cases behind the HTTP API.
type Service struct {
	repo  notificationRepository
	cache cache
}

// NewService creates a new notification service.
func NewService(repo notificationRepository, cache cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// CreateNotification persists a new pending notification produced by an
// upstream component. The record already carries its UTC delivery instant.
func (s *Service) CreateNotification(ctx context.Context, n model.Notification) (uuid.UUID, error) {
	n.Status = model.StatusPending

	id, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create notification: %w", err)
	}

	return id, nil
}

// GetNotificationStatusByID returns a notification's current status.
// Only terminal statuses are cached: pending and processing records keep
// changing underneath the worker and the rescheduler, so caching them
// would serve stale state.
func (s *Service) GetNotificationStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error) {
	cached, err := s.cache.GetWithRetry(ctx, strategy, statusKey(id))
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status from cache")
	}

	if err == nil && cached != "" {
		return model.Status(cached), nil
	}

	status, err := s.repo.GetNotificationStatusByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get notification status: %w", err)
	}

	if isTerminal(status) {
		if err := s.cache.SetWithRetry(ctx, strategy, statusKey(id), string(status)); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
		}
	}

	return status, nil
}

// GetNotificationByID returns the full persisted record.
func (s *Service) GetNotificationByID(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	n, err := s.repo.GetNotificationByID(ctx, id)
	if err != nil {
		return model.Notification{}, fmt.Errorf("get notification: %w", err)
	}

	return n, nil
}

// GetAllNotifications returns every notification for operational reads.
func (s *Service) GetAllNotifications(ctx context.Context) ([]model.Notification, error) {
	notifications, err := s.repo.GetAllNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all notifications: %w", err)
	}

	return notifications, nil
}

func statusKey(id uuid.UUID) string {
	return "notification:status:" + id.String()
}

func isTerminal(status model.Status) bool {
	switch status {
	case model.StatusSent, model.StatusFailed, model.StatusCancelled:
		return true
	case model.StatusPending, model.StatusProcessing:
		return false
	}
	return false
}
