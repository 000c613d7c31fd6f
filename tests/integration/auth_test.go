package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailyReflectAPI/handlers"
	"dailyReflectAPI/internal/user"
	"dailyReflectAPI/services"
	"dailyReflectAPI/tests/helpers"
)

func TestGetProfile_Authenticated(t *testing.T) {
	// Setup
	pool := helpers.SetupTestDB(t)
	defer helpers.CleanupTestDB(t, pool)

	userService := services.NewUserService(pool)
	userHandler := handlers.NewUserHandler(userService)

	// Create a test user
	clerkID := "user_test_" + time.Now().Format("20060102150405")
	ctx := context.Background()

	createReq := &user.CreateUserRequest{
		ClerkID:   clerkID,
		Email:     "testauth@example.com",
		Username:  "testauth",
		FirstName: "Test",
		LastName:  "Auth",
		ImageURL:  "https://example.com/image.jpg",
	}

	createdUser, err := userService.CreateUser(ctx, createReq)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user", nil)
	req = helpers.AuthenticatedRequest(req, clerkID)
	rr := httptest.NewRecorder()

	userHandler.GetProfile(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response user.User
	err = json.Unmarshal(rr.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, createdUser.ID, response.ID)
	assert.Equal(t, clerkID, response.ClerkID)
	assert.Equal(t, "testauth@example.com", response.Email)
	assert.Equal(t, "testauth", response.Username)
}

func TestGetProfile_Unauthenticated(t *testing.T) {
	// Setup
	pool := helpers.SetupTestDB(t)
	defer helpers.CleanupTestDB(t, pool)

	userService := services.NewUserService(pool)
	userHandler := handlers.NewUserHandler(userService)

	// Request WITHOUT auth
	req := httptest.NewRequest(http.MethodGet, "/api/v1/user", nil)
	rr := httptest.NewRecorder()

	userHandler.GetProfile(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Contains(t, response["error"], "not authenticated")
}

// An unauthenticated mutation must never reach the store.
func TestCreateGoal_Unauthenticated(t *testing.T) {
	pool := helpers.SetupTestDB(t)
	defer helpers.CleanupTestDB(t, pool)

	goalService := services.NewGoalService(pool)
	goalHandler := handlers.NewGoalHandler(goalService)

	var before int
	require.NoError(t, pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM goals").Scan(&before))

	body := `{"title": "Read more", "text": "20 pages a day", "date": "08/30/2026"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/goals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	goalHandler.CreateGoal(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var after int
	require.NoError(t, pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM goals").Scan(&after))
	assert.Equal(t, before, after, "no goal row should be written")
}

func TestCreateEntry_Unauthenticated(t *testing.T) {
	pool := helpers.SetupTestDB(t)
	defer helpers.CleanupTestDB(t, pool)

	journalService := services.NewJournalService(pool)
	journalHandler := handlers.NewJournalHandler(journalService)

	var before int
	require.NoError(t, pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM journal").Scan(&before))

	body := `{"title": "A good day", "content": "Went for a walk.", "mood": "good"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/journal", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	journalHandler.CreateEntry(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "not authenticated")

	var after int
	require.NoError(t, pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM journal").Scan(&after))
	assert.Equal(t, before, after, "no entry row should be written")
}

func TestDeleteAccount_Authenticated(t *testing.T) {
	// Setup
	pool := helpers.SetupTestDB(t)
	defer helpers.CleanupTestDB(t, pool)

	userService := services.NewUserService(pool)
	userHandler := handlers.NewUserHandler(userService)

	clerkID := "user_test_" + time.Now().Format("20060102150405")
	ctx := context.Background()

	_, err := userService.CreateUser(ctx, &user.CreateUserRequest{
		ClerkID:   clerkID,
		Email:     "testdelete@example.com",
		Username:  "testdelete",
		FirstName: "Test",
		LastName:  "Delete",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/user/delete-account", nil)
	req = helpers.AuthenticatedRequest(req, clerkID)
	rr := httptest.NewRecorder()

	userHandler.DeleteAccount(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	// Verify deletion
	_, err = userService.GetUserByClerkID(ctx, clerkID)
	assert.Error(t, err, "User should be deleted")
}
