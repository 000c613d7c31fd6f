package tests

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailyReflectAPI/internal/notification"
	"dailyReflectAPI/internal/user"
	"dailyReflectAPI/services"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	if err := godotenv.Load("../.env"); err != nil {
		_ = godotenv.Load()
		log.Println("Warning: .env file not found via godotenv")
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		t.Fatal("TEST_DATABASE_URL or DATABASE_URL must be set")
	}

	db, err := pgxpool.New(context.Background(), dbURL)
	require.NoError(t, err)
	return db
}

// recordingPush captures what would have gone to FCM.
type recordingPush struct {
	tokens []notification.DeviceToken
	title  string
	body   string
}

func (r *recordingPush) SendPush(ctx context.Context, tokens []notification.DeviceToken, title, body string, data map[string]any) error {
	r.tokens = tokens
	r.title = title
	r.body = body
	return nil
}

func TestReminderPushFlow(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	userService := services.NewUserService(db)
	svc := services.NewNotificationService(db)
	push := &recordingPush{}
	svc.SetPushProvider(push)

	ctx := context.Background()
	clerkID := "user_test_notif_" + time.Now().Format("20060102150405")

	_, err := userService.CreateUser(ctx, &user.CreateUserRequest{
		ClerkID:  clerkID,
		Email:    "test.notif@example.com",
		Username: "testnotif",
	})
	require.NoError(t, err)
	defer userService.DeleteUserByClerkID(ctx, clerkID)

	// No devices yet: sending is a no-op, not an error.
	require.NoError(t, svc.SendReminder(ctx, clerkID))
	assert.Empty(t, push.tokens)

	// Register a device, twice with the same token.
	req := notification.RegisterDeviceRequest{Token: "fcm_test_token_1", Platform: "android"}
	require.NoError(t, svc.RegisterDevice(ctx, clerkID, req))
	require.NoError(t, svc.RegisterDevice(ctx, clerkID, req))

	tokens, err := svc.GetDeviceTokens(ctx, clerkID)
	require.NoError(t, err)
	require.Len(t, tokens, 1, "re-registering the same token must not duplicate it")
	assert.Equal(t, "android", tokens[0].Platform)

	// The reminder goes out with the fixed copy.
	require.NoError(t, svc.SendReminder(ctx, clerkID))
	require.Len(t, push.tokens, 1)
	assert.Equal(t, notification.ReminderTitle, push.title)
	assert.Equal(t, notification.ReminderBody, push.body)
}
