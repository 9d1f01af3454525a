package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"revenue-copilot/config"
	"revenue-copilot/database"
	routes "revenue-copilot/internal/app/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestAPI spins up a Postgres container, migrates the schema, and
// returns a router plus an admin token.
func setupTestAPI(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("revenue_copilot_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	os.Setenv("DB_URL", connStr)
	database.InitDB()

	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "integration-secret"
	r := gin.New()
	routes.RegisterRoutes(r)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u-admin",
		"email":   "admin@test",
		"role":    "ADMIN",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.JWT_SECRET))
	require.NoError(t, err)

	return r, signed
}

func doJSON(t *testing.T, r *gin.Engine, token, method, path string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestAdminResourceLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	r, token := setupTestAPI(t)

	// owner user for the organization
	w, user := doJSON(t, r, token, http.MethodPost, "/api/admin/users", map[string]any{
		"email": "owner@test", "password": "password123", "role": "USER",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	ownerID := user["id"].(string)
	require.NotEmpty(t, ownerID)
	assert.NotContains(t, user, "passwordHash")

	t.Run("duplicate user email conflicts", func(t *testing.T) {
		w, _ := doJSON(t, r, token, http.MethodPost, "/api/admin/users", map[string]any{
			"email": "owner@test", "password": "password123", "role": "USER",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	w, org := doJSON(t, r, token, http.MethodPost, "/api/admin/organizations", map[string]any{
		"name": "Acme", "slug": "acme", "ownerId": ownerID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orgID := org["id"].(string)

	t.Run("create eagerly embeds relations", func(t *testing.T) {
		owner, ok := org["owner"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "owner@test", owner["email"])
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		w, body := doJSON(t, r, token, http.MethodPost, "/api/admin/organizations", map[string]any{
			"name": "Acme Again", "slug": "acme", "ownerId": ownerID,
		})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "An organization with this slug already exists", body["error"])
	})

	t.Run("plan defaults and partial update", func(t *testing.T) {
		w, plan := doJSON(t, r, token, http.MethodPost, "/api/admin/plans", map[string]any{
			"name": "Pro", "type": "TEAM", "price": 49.0,
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "USD", plan["currency"])
		assert.Equal(t, "month", plan["interval"])

		w, updated := doJSON(t, r, token, http.MethodPut, "/api/admin/plans/"+plan["id"].(string), map[string]any{
			"price": 59.0,
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 59.0, updated["price"])
		// untouched fields survive a partial update
		assert.Equal(t, "Pro", updated["name"])
		assert.Equal(t, "TEAM", updated["type"])
	})

	t.Run("invoice date set and clear", func(t *testing.T) {
		w, inv := doJSON(t, r, token, http.MethodPost, "/api/admin/invoices", map[string]any{
			"organizationId": orgID, "number": "INV-1", "amount": 100.0,
			"dueDate": "2026-05-01T00:00:00Z",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "draft", inv["status"])
		require.NotNil(t, inv["dueDate"])
		invID := inv["id"].(string)

		// explicit null clears the date; omitting it leaves it alone
		w, updated := doJSON(t, r, token, http.MethodPut, "/api/admin/invoices/"+invID, map[string]any{
			"dueDate": nil, "status": "sent",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, updated["dueDate"])
		assert.Equal(t, "sent", updated["status"])

		w, updated = doJSON(t, r, token, http.MethodPut, "/api/admin/invoices/"+invID, map[string]any{
			"amount": 120.0,
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, updated["dueDate"])

		w, _ = doJSON(t, r, token, http.MethodPost, "/api/admin/invoices", map[string]any{
			"organizationId": orgID, "number": "INV-1", "amount": 50.0,
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("api key raw secret shown once", func(t *testing.T) {
		w, created := doJSON(t, r, token, http.MethodPost, "/api/admin/api-keys", map[string]any{
			"organizationId": orgID, "name": "ci",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		raw, _ := created["rawKey"].(string)
		require.NotEmpty(t, raw)
		assert.NotContains(t, created, "keyHash")

		w, fetched := doJSON(t, r, token, http.MethodGet, "/api/admin/api-keys/"+created["id"].(string), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, fetched, "rawKey")
		assert.NotContains(t, fetched, "keyHash")
		assert.NotEqual(t, raw, fetched["keyPrefix"])
	})

	t.Run("explicitly inactive integration round-trips", func(t *testing.T) {
		w, integ := doJSON(t, r, token, http.MethodPost, "/api/admin/integrations", map[string]any{
			"organizationId": orgID, "type": "CUSTOM", "name": "paused", "isActive": false,
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, false, integ["isActive"])

		// and survives the re-fetch, not just the creation response
		w, fetched := doJSON(t, r, token, http.MethodGet, "/api/admin/integrations/"+integ["id"].(string), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, fetched["isActive"])

		// an absent flag still defaults to active
		w, integ = doJSON(t, r, token, http.MethodPost, "/api/admin/integrations", map[string]any{
			"organizationId": orgID, "type": "CUSTOM", "name": "live",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, true, integ["isActive"])
	})

	t.Run("update of a missing record is a 404", func(t *testing.T) {
		w, _ := doJSON(t, r, token, http.MethodPut,
			"/api/admin/organizations/9b1deb4d-0000-0000-0000-000000000000",
			map[string]any{"name": "ghost"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		w, member := doJSON(t, r, token, http.MethodPost, "/api/admin/team-members", map[string]any{
			"userId": ownerID, "organizationId": orgID,
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "member", member["role"])
		memberID := member["id"].(string)

		w, body := doJSON(t, r, token, http.MethodDelete, "/api/admin/team-members/"+memberID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["ok"])

		// deleting an already-absent row still reports success
		w, body = doJSON(t, r, token, http.MethodDelete, "/api/admin/team-members/"+memberID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["ok"])
	})

	t.Run("missing record is a 404", func(t *testing.T) {
		w, _ := doJSON(t, r, token, http.MethodGet, "/api/admin/customers/9b1deb4d-0000-0000-0000-000000000000", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("dashboard counts", func(t *testing.T) {
		w, stats := doJSON(t, r, token, http.MethodGet, "/api/admin/dashboard", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.GreaterOrEqual(t, stats["users"], 1.0)
		assert.GreaterOrEqual(t, stats["organizations"], 1.0)
	})
}
