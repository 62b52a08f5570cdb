package main_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	mainapp "casino"
	"casino/internal/models"
	"casino/internal/revocation"
)

func newTestApp(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.User{}, &models.Cosmetic{}, &models.Game{}))
	return db
}

func TestNewAppHealthCheck(t *testing.T) {
	db := newTestApp(t)
	app := mainapp.NewApp(db, revocation.NewMemoryStore(), nil, "test_jwt_secret")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestNewAppProtectedRouteRequiresToken(t *testing.T) {
	db := newTestApp(t)
	app := mainapp.NewApp(db, revocation.NewMemoryStore(), nil, "test_jwt_secret")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestNewAppPublicCatalog(t *testing.T) {
	db := newTestApp(t)
	app := mainapp.NewApp(db, revocation.NewMemoryStore(), nil, "test_jwt_secret")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cosmetics/", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
