package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"dailyReflectAPI/internal/notification"
)

// PushProvider sends a push to a set of device tokens. Satisfied by the FCM
// client in production and by a recorder in tests.
type PushProvider interface {
	SendPush(ctx context.Context, tokens []notification.DeviceToken, title, body string, data map[string]any) error
}

type NotificationService struct {
	db   *pgxpool.Pool
	push PushProvider
}

func NewNotificationService(db *pgxpool.Pool) *NotificationService {
	return &NotificationService{db: db}
}

// SetPushProvider wires the push backend after construction. Until it is set
// the service registers tokens but sends nothing.
func (s *NotificationService) SetPushProvider(p PushProvider) {
	s.push = p
}

// RegisterDevice stores a push token for the caller. Re-registering the same
// token just refreshes its last_used stamp.
func (s *NotificationService) RegisterDevice(ctx context.Context, clerkID string, req notification.RegisterDeviceRequest) error {
	if req.Token == "" {
		return fmt.Errorf("token is required")
	}

	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		ctx,
		`INSERT INTO device_tokens (user_id, token, platform, added_at, last_used)
		 VALUES ($1, $2, $3, NOW(), NOW())
		 ON CONFLICT (token) DO UPDATE SET user_id = $1, platform = $3, last_used = NOW()`,
		userID, req.Token, req.Platform,
	)
	if err != nil {
		return fmt.Errorf("failed to register device: %w", err)
	}

	return nil
}

// GetDeviceTokens returns the caller's registered push targets.
func (s *NotificationService) GetDeviceTokens(ctx context.Context, clerkID string) ([]notification.DeviceToken, error) {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		ctx,
		"SELECT token, platform, added_at, last_used FROM device_tokens WHERE user_id = $1",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch device tokens: %w", err)
	}
	defer rows.Close()

	tokens := []notification.DeviceToken{}
	for rows.Next() {
		var t notification.DeviceToken
		if err := rows.Scan(&t.Token, &t.Platform, &t.AddedAt, &t.LastUsed); err != nil {
			return nil, fmt.Errorf("failed to scan device token: %w", err)
		}
		tokens = append(tokens, t)
	}

	return tokens, nil
}

// SendReminder pushes the journal reminder to every device the user has. A
// user with no devices is not an error; there is just nothing to deliver.
func (s *NotificationService) SendReminder(ctx context.Context, clerkID string) error {
	if s.push == nil {
		log.Println("Notifications: no push provider wired, skipping reminder")
		return nil
	}

	tokens, err := s.GetDeviceTokens(ctx, clerkID)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	return s.push.SendPush(ctx, tokens, notification.ReminderTitle, notification.ReminderBody, map[string]any{
		"type": "journal_reminder",
	})
}

func (s *NotificationService) getUserID(ctx context.Context, clerkID string) (uuid.UUID, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, "SELECT id FROM users WHERE clerk_id = $1", clerkID).Scan(&userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("user not found for clerk_id %s: %w", clerkID, err)
	}
	return userID, nil
}
