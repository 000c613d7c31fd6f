package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dailyReflectAPI/internal/goal"
)

type GoalService struct {
	db   *pgxpool.Pool
	feed *FeedService
}

func NewGoalService(db *pgxpool.Pool) *GoalService {
	return &GoalService{db: db}
}

func (s *GoalService) SetFeed(feed *FeedService) {
	s.feed = feed
	feed.RegisterLoader("goal", func(ctx context.Context, clerkID string) (any, error) {
		return s.GetGoals(ctx, clerkID, goal.FilterAll)
	})
}

// CreateGoal persists a validated draft. New goals always start active; a
// client cannot create a pre-completed goal.
func (s *GoalService) CreateGoal(ctx context.Context, clerkID string, draft goal.Draft) (*goal.Goal, error) {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	draft = draft.Normalize(time.Now())
	if errs := draft.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("draft is not submittable")
	}

	query := `
	INSERT INTO goals (id, title, text, date, completed, user_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, FALSE, $5, NOW(), NOW())
	RETURNING id, title, text, date, completed, user_id, created_at, updated_at, progress, target, unit
	`

	g := &goal.Goal{}
	err = s.db.QueryRow(
		ctx, query,
		uuid.New(), draft.Title, draft.Text, draft.Date, userID,
	).Scan(
		&g.ID, &g.Title, &g.Text, &g.Date, &g.Completed, &g.UserID,
		&g.CreatedAt, &g.UpdatedAt, &g.Progress, &g.Target, &g.Unit,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	if s.feed != nil {
		go s.feed.Publish(context.Background(), clerkID, "goal")
	}

	return g, nil
}

// GetGoals returns the caller's goals in creation order, optionally narrowed
// by completion state. Filtering happens in memory on the full set so the
// list keeps a stable relative order across filter switches.
func (s *GoalService) GetGoals(ctx context.Context, clerkID string, filter goal.Filter) ([]goal.Goal, error) {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT id, title, text, date, completed, user_id, created_at, updated_at, progress, target, unit
	FROM goals
	WHERE user_id = $1
	ORDER BY created_at ASC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch goals: %w", err)
	}
	defer rows.Close()

	goals := []goal.Goal{}
	for rows.Next() {
		var g goal.Goal
		err := rows.Scan(
			&g.ID, &g.Title, &g.Text, &g.Date, &g.Completed, &g.UserID,
			&g.CreatedAt, &g.UpdatedAt, &g.Progress, &g.Target, &g.Unit,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}

	return filter.Apply(goals), nil
}

// ToggleGoal flips the completion flag of one goal the caller owns. Nothing
// else on the record changes.
func (s *GoalService) ToggleGoal(ctx context.Context, clerkID string, goalID uuid.UUID) (*goal.Goal, error) {
	userID, err := s.getUserID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	UPDATE goals
	SET completed = NOT completed, updated_at = NOW()
	WHERE id = $1 AND user_id = $2
	RETURNING id, title, text, date, completed, user_id, created_at, updated_at, progress, target, unit
	`

	g := &goal.Goal{}
	err = s.db.QueryRow(ctx, query, goalID, userID).Scan(
		&g.ID, &g.Title, &g.Text, &g.Date, &g.Completed, &g.UserID,
		&g.CreatedAt, &g.UpdatedAt, &g.Progress, &g.Target, &g.Unit,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("goal not found")
		}
		return nil, fmt.Errorf("failed to toggle goal: %w", err)
	}

	if s.feed != nil {
		go s.feed.Publish(context.Background(), clerkID, "goal")
	}

	return g, nil
}

func (s *GoalService) getUserID(ctx context.Context, clerkID string) (uuid.UUID, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, "SELECT id FROM users WHERE clerk_id = $1", clerkID).Scan(&userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("user not found for clerk_id %s: %w", clerkID, err)
	}
	return userID, nil
}
