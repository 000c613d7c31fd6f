package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"dailyReflectAPI/internal/journal"
	"dailyReflectAPI/internal/stats"
)

type JournalService struct {
	db   *pgxpool.Pool
	feed *FeedService
}

func NewJournalService(db *pgxpool.Pool) *JournalService {
	return &JournalService{db: db}
}

// SetFeed wires the snapshot feed. Done after construction so the feed can
// also pull from this service.
func (s *JournalService) SetFeed(feed *FeedService) {
	s.feed = feed
	feed.RegisterLoader("journal", func(ctx context.Context, clerkID string) (any, error) {
		return s.GetEntries(ctx, clerkID)
	})
}

// CreateEntry persists a validated draft. The owner always comes from the
// authenticated session; the store assigns the id. The draft is expected to
// have passed Validate already - this never writes an unsubmittable entry.
func (s *JournalService) CreateEntry(ctx context.Context, clerkID string, draft journal.Draft) (*journal.Entry, error) {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	draft = draft.Normalize(time.Now())
	if errs := draft.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("draft is not submittable")
	}

	query := `
	INSERT INTO journal (id, title, content, date, mood, user_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW())
	RETURNING id, title, content, date, mood, user_id, created_at
	`

	entry := &journal.Entry{}
	err = s.db.QueryRow(
		ctx, query,
		uuid.New(), draft.Title, draft.Content, draft.Date, draft.Mood, userID,
	).Scan(
		&entry.ID, &entry.Title, &entry.Content, &entry.Date, &entry.Mood, &entry.UserID, &entry.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	if s.feed != nil {
		go s.feed.Publish(context.Background(), clerkID, "journal")
	}

	return entry, nil
}

// GetEntries returns the caller's entries, newest first. Records are scoped
// to the user in the query itself so nobody else's entries can leak out.
func (s *JournalService) GetEntries(ctx context.Context, clerkID string) ([]journal.Entry, error) {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT id, title, content, date, mood, user_id, created_at
	FROM journal
	WHERE user_id = $1
	ORDER BY date DESC, created_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal entries: %w", err)
	}
	defer rows.Close()

	entries := []journal.Entry{}
	for rows.Next() {
		var e journal.Entry
		err := rows.Scan(&e.ID, &e.Title, &e.Content, &e.Date, &e.Mood, &e.UserID, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// ShouldRemind applies the reminder policy to the caller's entries.
func (s *JournalService) ShouldRemind(ctx context.Context, clerkID string, today time.Time) (bool, error) {
	entries, err := s.GetEntries(ctx, clerkID)
	if err != nil {
		return false, err
	}
	return journal.ShouldRemind(entries, today), nil
}

// WeeklyMoods derives the 7-day mood trend for the caller.
func (s *JournalService) WeeklyMoods(ctx context.Context, clerkID string, today time.Time) ([]stats.WeeklyMood, error) {
	entries, err := s.GetEntries(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	return stats.WeeklyMoods(entries, today), nil
}

// MoodDistribution derives the all-time mood breakdown for the caller.
func (s *JournalService) MoodDistribution(ctx context.Context, clerkID string) ([]stats.MoodDistribution, error) {
	entries, err := s.GetEntries(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	return stats.Distribution(entries), nil
}

func (s *JournalService) getUserID(ctx context.Context, clerkID string) (uuid.UUID, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, "SELECT id FROM users WHERE clerk_id = $1", clerkID).Scan(&userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("user not found for clerk_id %s: %w", clerkID, err)
	}
	return userID, nil
}
