package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetAll() ([]bson.M, error) { return nil, nil }

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) Upsert(email string, profile bson.M) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{}, nil
}

func (f *fakeUserRepo) SetRole(email, role string) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{}, nil
}

func setupAuthTest() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", JWTAuthMiddleware(), func(c *gin.Context) {
		email, _ := AuthenticatedEmail(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return r
}

func doRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_MissingHeaderIsUnauthorized(t *testing.T) {
	r := setupAuthTest()

	w := doRequest(r, http.MethodGet, "/probe", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_NonBearerCredentialIsForbidden(t *testing.T) {
	r := setupAuthTest()

	// A present credential of the wrong scheme is a failed credential, not a
	// missing one.
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Basic xyz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuth_MalformedTokenIsForbidden(t *testing.T) {
	r := setupAuthTest()

	w := doRequest(r, http.MethodGet, "/probe", "not-a-jwt")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuth_ExpiredTokenIsForbidden(t *testing.T) {
	r := setupAuthTest()

	token, err := utils.GenerateToken("p@x.com", -time.Hour)
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/probe", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuth_ValidTokenAttachesEmail(t *testing.T) {
	r := setupAuthTest()

	token, err := utils.GenerateToken("p@x.com", time.Hour)
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/probe", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "p@x.com")
}

func setupAdminTest(repo *fakeUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", JWTAuthMiddleware(), AdminAuthMiddleware(repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminAuth_AdminRolePasses(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{
		"boss@x.com": {Email: "boss@x.com", Role: models.RoleAdmin},
	}}
	r := setupAdminTest(repo)

	token, err := utils.GenerateToken("boss@x.com", time.Hour)
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/guarded", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuth_NonAdminIsForbidden(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{
		"pleb@x.com": {Email: "pleb@x.com"},
	}}
	r := setupAdminTest(repo)

	token, err := utils.GenerateToken("pleb@x.com", time.Hour)
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/guarded", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminAuth_AbsentUserIsForbiddenNotAFault(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{}}
	r := setupAdminTest(repo)

	token, err := utils.GenerateToken("nobody@x.com", time.Hour)
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/guarded", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminAuth_RunsOnlyAfterAuthentication(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{}}
	r := setupAdminTest(repo)

	// Without any credential the request dies at the authentication gate.
	w := doRequest(r, http.MethodGet, "/guarded", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
