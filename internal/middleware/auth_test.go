package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Shubha258/Task-Manager/internal/models"
	"github.com/Shubha258/Task-Manager/internal/repository"
	"github.com/Shubha258/Task-Manager/internal/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	router *gin.Engine
	tokens *token.Service
	user   *models.User
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Task{})
	require.NoError(t, err)

	user := &models.User{
		Name:     "guard-user",
		Email:    "guard@example.com",
		Password: "irrelevant-hash",
	}
	require.NoError(t, db.Create(user).Error)

	userRepo := repository.NewUserRepository(db)
	tokens := token.NewService("test-secret")

	r := gin.New()
	r.GET("/protected", RequireAuth(tokens, userRepo), func(c *gin.Context) {
		current, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": current.ID})
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		router: r,
		tokens: tokens,
		user:   user,
	}
}

func doProtected(t *testing.T, env authTestEnv, header string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := doProtected(t, env, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Token not found")
}

func TestRequireAuth_NoSecondSegment(t *testing.T) {
	env := setupAuthTestEnv(t)

	tok, err := env.tokens.Issue(env.user.ID)
	require.NoError(t, err)

	// A bare token with no scheme prefix is treated as missing, not invalid.
	w := doProtected(t, env, tok)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Token not found")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := doProtected(t, env, "Bearer not-a-real-token")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid token")
}

func TestRequireAuth_UnknownUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	tok, err := env.tokens.Issue(env.user.ID + 1000)
	require.NoError(t, err)

	w := doProtected(t, env, "Bearer "+tok)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "User not found")
}

func TestRequireAuth_Success(t *testing.T) {
	env := setupAuthTestEnv(t)

	tok, err := env.tokens.Issue(env.user.ID)
	require.NoError(t, err)

	w := doProtected(t, env, "Bearer "+tok)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_SchemeNotValidated(t *testing.T) {
	env := setupAuthTestEnv(t)

	tok, err := env.tokens.Issue(env.user.ID)
	require.NoError(t, err)

	// Only the second whitespace-delimited segment is used.
	w := doProtected(t, env, "Whatever "+tok)

	require.Equal(t, http.StatusOK, w.Code)
}
