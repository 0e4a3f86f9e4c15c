package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
	"github.com/ecetin/collegehub/internal/pkg/auth"
)

type stubUserRepo struct {
	users map[int64]*models.User
}

func (r *stubUserRepo) CreateUser(context.Context, *models.User) (int64, error) { return 0, nil }
func (r *stubUserRepo) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}
func (r *stubUserRepo) EmailExists(context.Context, string) (bool, error)   { return false, nil }
func (r *stubUserRepo) GetAllUsers(context.Context) ([]*models.User, error) { return nil, nil }
func (r *stubUserRepo) DeleteUser(context.Context, int64) error             { return nil }

func (r *stubUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func newTestRouter(t *testing.T, repo *stubUserRepo, roles ...models.RoleType) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "middleware-test-secret",
		AccessTokenExp: 30 * time.Minute,
		TokenIssuer:    "collegehub.test",
	})
	m := NewAuthMiddleware(jwtService, repo)

	router := gin.New()
	group := router.Group("/protected", m.JWTAuth())
	if len(roles) > 0 {
		group.Use(m.RequireRoles(roles...))
	}
	group.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router, jwtService
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingToken(t *testing.T) {
	router, _ := newTestRouter(t, &stubUserRepo{})

	if w := doRequest(router, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router, _ := newTestRouter(t, &stubUserRepo{})

	if w := doRequest(router, "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for garbage token, got %d", w.Code)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	user := &models.User{ID: 7, Email: "sam@college.edu", RoleType: models.RoleStudent}
	router, jwtService := newTestRouter(t, &stubUserRepo{users: map[int64]*models.User{7: user}})

	token, _, err := jwtService.GenerateToken(user)
	if err != nil {
		t.Fatal(err)
	}
	if w := doRequest(router, token); w.Code != http.StatusOK {
		t.Errorf("expected 200 with valid token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireRolesChecksCurrentRole(t *testing.T) {
	student := &models.User{ID: 7, Email: "sam@college.edu", RoleType: models.RoleStudent}
	repo := &stubUserRepo{users: map[int64]*models.User{7: student}}
	router, jwtService := newTestRouter(t, repo, models.RoleStaff, models.RoleAdmin)

	token, _, err := jwtService.GenerateToken(student)
	if err != nil {
		t.Fatal(err)
	}

	if w := doRequest(router, token); w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for student on staff route, got %d", w.Code)
	}

	// The gate reads the database, not the token: promoting the user
	// grants access with the same token.
	repo.users[7] = &models.User{ID: 7, Email: "sam@college.edu", RoleType: models.RoleStaff}
	if w := doRequest(router, token); w.Code != http.StatusOK {
		t.Errorf("expected 200 after role change, got %d", w.Code)
	}
}

func TestRequireRolesDeletedAccount(t *testing.T) {
	user := &models.User{ID: 7, Email: "sam@college.edu", RoleType: models.RoleAdmin}
	repo := &stubUserRepo{users: map[int64]*models.User{7: user}}
	router, jwtService := newTestRouter(t, repo, models.RoleAdmin)

	token, _, err := jwtService.GenerateToken(user)
	if err != nil {
		t.Fatal(err)
	}

	delete(repo.users, 7)
	if w := doRequest(router, token); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for deleted account, got %d", w.Code)
	}
}
