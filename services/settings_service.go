package services

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"dailyReflectAPI/internal/notification"
	"dailyReflectAPI/internal/settings"
)

type SettingsService struct {
	db *pgxpool.Pool
}

func NewSettingsService(db *pgxpool.Pool) *SettingsService {
	return &SettingsService{db: db}
}

// GetSettings loads the caller's preferences, with defaults filling any key
// never written.
func (s *SettingsService) GetSettings(ctx context.Context, clerkID string) (settings.Settings, error) {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return settings.Settings{}, err
	}
	return settings.Load(&pgStore{ctx: ctx, db: s.db, userID: userID}), nil
}

// UpdateSettings replaces the caller's preferences wholesale. The app always
// sends the full settings object, so a partial write path isn't needed.
func (s *SettingsService) UpdateSettings(ctx context.Context, clerkID string, prefs settings.Settings) (settings.Settings, error) {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return settings.Settings{}, err
	}

	store := &pgStore{ctx: ctx, db: s.db, userID: userID}
	if err := prefs.Save(store); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings.Load(store), nil
}

// ReminderTarget is one user due a push reminder, with the wall-clock time
// they picked.
type ReminderTarget struct {
	ClerkID      string
	ReminderTime string
}

// ReminderTargets returns every user who has reminders switched on, paired
// with their chosen time. Users who never touched the toggle count as on,
// matching the default, at the fallback time.
func (s *SettingsService) ReminderTargets(ctx context.Context) ([]ReminderTarget, error) {
	query := `
	SELECT u.clerk_id,
	       COALESCE(enabled.value, 'true'),
	       COALESCE(at.value, '')
	FROM users u
	LEFT JOIN user_settings enabled ON enabled.user_id = u.id AND enabled.key = $1
	LEFT JOIN user_settings at ON at.user_id = u.id AND at.key = $2
	`

	rows, err := s.db.Query(ctx, query, settings.KeyRemindersEnabled, settings.KeyReminderTime)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reminder targets: %w", err)
	}
	defer rows.Close()

	targets := []ReminderTarget{}
	for rows.Next() {
		var clerkID, enabledRaw, at string
		if err := rows.Scan(&clerkID, &enabledRaw, &at); err != nil {
			return nil, fmt.Errorf("failed to scan reminder target: %w", err)
		}
		enabled, err := strconv.ParseBool(enabledRaw)
		if err != nil {
			enabled = true
		}
		if !enabled {
			continue
		}
		if at == "" {
			at = notification.DefaultReminderTime
		}
		targets = append(targets, ReminderTarget{ClerkID: clerkID, ReminderTime: at})
	}

	return targets, nil
}

func (s *SettingsService) getUserID(ctx context.Context, clerkID string) (uuid.UUID, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, "SELECT id FROM users WHERE clerk_id = $1", clerkID).Scan(&userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("user not found for clerk_id %s: %w", clerkID, err)
	}
	return userID, nil
}

// pgStore adapts one user's rows in user_settings to the settings.Store
// key/value contract.
type pgStore struct {
	ctx    context.Context
	db     *pgxpool.Pool
	userID uuid.UUID
}

func (p *pgStore) Get(key string) (string, bool) {
	var value string
	err := p.db.QueryRow(
		p.ctx,
		"SELECT value FROM user_settings WHERE user_id = $1 AND key = $2",
		p.userID, key,
	).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (p *pgStore) Set(key, value string) error {
	_, err := p.db.Exec(
		p.ctx,
		`INSERT INTO user_settings (user_id, key, value, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (user_id, key) DO UPDATE SET value = $3, updated_at = NOW()`,
		p.userID, key, value,
	)
	if err != nil {
		log.Printf("Settings: failed to write %s for user %s: %v", key, p.userID, err)
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}
