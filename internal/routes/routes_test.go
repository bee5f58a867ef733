package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/shift-scheduler/internal/auth"
	"github.com/BruksfildServices01/shift-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/shift-scheduler/internal/db"
	"github.com/BruksfildServices01/shift-scheduler/internal/dto"
	"github.com/BruksfildServices01/shift-scheduler/internal/handlers"
	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	infraRepo "github.com/BruksfildServices01/shift-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
	"github.com/BruksfildServices01/shift-scheduler/internal/timezone"
)

type testAPI struct {
	t          *testing.T
	router     *gin.Engine
	db         *gorm.DB
	closeAudit func()

	worker  *models.User
	other   *models.User
	manager *models.User
	tokens  map[uint]string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := dbpkg.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// The audit worker writes concurrently with requests.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
		Timezone:  "UTC",
	}

	r := gin.New()
	closeAudit := RegisterRoutes(r, Deps{DB: db, Config: cfg, Log: zap.NewNop()})

	api := &testAPI{
		t:          t,
		router:     r,
		db:         db,
		closeAudit: closeAudit,
		tokens:     map[uint]string{},
	}

	users := infraRepo.NewUserGormRepository(db)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	seed := func(email string, role models.Role) *models.User {
		hash, err := auth.HashPassword("secret123")
		require.NoError(t, err)
		u := &models.User{Name: email, Email: email, PasswordHash: hash, IsActive: true, Role: role}
		require.NoError(t, users.Create(context.Background(), u))

		tok, err := tokens.Issue(u)
		require.NoError(t, err)
		api.tokens[u.ID] = tok
		return u
	}

	api.worker = seed("worker@example.com", models.RoleWorker)
	api.other = seed("other@example.com", models.RoleWorker)
	api.manager = seed("manager@example.com", models.RoleManager)

	return api
}

func (a *testAPI) do(method, path string, as *models.User, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if as != nil {
		req.Header.Set("Authorization", "Bearer "+a.tokens[as.ID])
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var env struct {
		Data    T      `json:"data"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "successful", env.Message)
	return env.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httperr.HTTPError {
	t.Helper()
	var e httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func (a *testAPI) createShift(name, date string, owner *models.User) dto.ShiftDTO {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/shifts", a.manager, map[string]any{
		"name":      name,
		"shiftDate": date,
		"shiftTime": "MORNING",
		"userId":    owner.ID,
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decodeData[dto.ShiftDTO](a.t, w)
}

func TestHealthAndAuth(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, "/api/shifts", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "missing_authorization_header", decodeError(t, w).Code)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/auth/login", nil, map[string]string{
		"email":    "Worker@Example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	res := decodeData[handlers.LoginResponse](t, w)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, api.worker.ID, res.User.ID)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+res.Token)
	me := httptest.NewRecorder()
	api.router.ServeHTTP(me, req)
	require.Equal(t, http.StatusOK, me.Code)
	assert.Equal(t, "worker@example.com", decodeData[dto.UserDTO](t, me).Email)

	w = api.do(http.MethodPost, "/api/auth/login", nil, map[string]string{
		"email":    "worker@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decodeError(t, w).Code)

	w = api.do(http.MethodPost, "/api/auth/login", nil, map[string]string{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAndQueryShifts(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/shifts", api.worker, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"message":"successful"}`, w.Body.String())

	created := api.createShift("Morning A", "2024-01-01", api.worker)
	assert.Equal(t, "2024-01-01", created.ShiftDate)
	assert.Equal(t, api.worker.ID, created.UserID)
	assert.Nil(t, created.Checkin)
	assert.False(t, created.Completed)

	t.Run("duplicate name and date", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/shifts", api.manager, map[string]any{
			"name": "Morning A", "shiftDate": "2024-01-01", "shiftTime": "NIGHT", "userId": api.other.ID,
		})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, `This shift "Morning A" already exists on January 1st 2024`, decodeError(t, w).Message)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/shifts", api.manager, map[string]any{
			"name": "Morning B", "shiftDate": "2024-01-01", "shiftTime": "NIGHT", "userId": 999,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad shift time", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/shifts", api.manager, map[string]any{
			"name": "Morning C", "shiftDate": "2024-01-01", "shiftTime": "EVENING", "userId": api.worker.ID,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	w = api.do(http.MethodGet, fmt.Sprintf("/api/shifts/%d", created.ID), api.other, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Morning A", decodeData[dto.ShiftDTO](t, w).Name)

	w = api.do(http.MethodGet, "/api/shifts/999", api.worker, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "This shift does not exist", decodeError(t, w).Message)

	w = api.do(http.MethodGet, "/api/shifts/0", api.worker, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/api/shifts/myShifts", api.worker, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeData[[]dto.ShiftDTO](t, w), 1)

	w = api.do(http.MethodGet, fmt.Sprintf("/api/shifts/user/%d", api.other.ID), api.worker, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeData[[]dto.ShiftDTO](t, w))
}

func TestShiftLifecycle(t *testing.T) {
	api := newTestAPI(t)

	today := timezone.FormatDate(timezone.Clock("UTC")())
	s := api.createShift("Today", today, api.worker)
	past := api.createShift("Past", "2020-02-02", api.worker)

	checkIn := func(id uint, as *models.User) *httptest.ResponseRecorder {
		return api.do(http.MethodPost, fmt.Sprintf("/api/shifts/%d/checkIn", id), as, nil)
	}
	checkOut := func(id uint, as *models.User) *httptest.ResponseRecorder {
		return api.do(http.MethodPost, fmt.Sprintf("/api/shifts/%d/checkOut", id), as, nil)
	}

	w := checkOut(s.ID, api.worker)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "not_checked_in", decodeError(t, w).Code)

	w = checkIn(s.ID, api.other)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "This shift does not belong to you", decodeError(t, w).Message)

	w = checkIn(past.ID, api.worker)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "not_shift_day", decodeError(t, w).Code)

	w = checkIn(s.ID, api.worker)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotNil(t, decodeData[dto.ShiftDTO](t, w).Checkin)

	w = checkIn(s.ID, api.worker)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "already_checked_in", decodeError(t, w).Code)

	w = checkOut(s.ID, api.worker)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "insufficient_duration", decodeError(t, w).Code)

	// Force-completion is limited to managers.
	w = api.do(http.MethodPost, fmt.Sprintf("/api/shifts/%d/complete", s.ID), api.worker, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "insufficient_role", decodeError(t, w).Code)

	w = api.do(http.MethodPost, fmt.Sprintf("/api/shifts/%d/complete", s.ID), api.manager, nil)
	require.Equal(t, http.StatusOK, w.Code)
	done := decodeData[dto.ShiftDTO](t, w)
	assert.True(t, done.Completed)
	assert.Nil(t, done.Checkout)

	w = checkOut(s.ID, api.worker)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "already_checked_out", decodeError(t, w).Code)

	w = api.do(http.MethodDelete, fmt.Sprintf("/api/shifts/%d", past.ID), api.worker, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodDelete, fmt.Sprintf("/api/shifts/%d", past.ID), api.manager, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, fmt.Sprintf("/api/shifts/%d", past.ID), api.worker, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Drain the audit queue before reading it back.
	api.closeAudit()

	w = api.do(http.MethodGet, "/api/audit-logs?entity=shift&action=shift_created", api.worker, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodGet, "/api/audit-logs?entity=shift&action=shift_created", api.manager, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decodeData[handlers.AuditLogPage](t, w)
	assert.EqualValues(t, 2, page.Total)
	assert.Len(t, page.Logs, 2)
}

func TestUserAdministration(t *testing.T) {
	api := newTestAPI(t)
	s := api.createShift("Morning A", "2024-01-01", api.other)

	w := api.do(http.MethodGet, "/api/users", api.worker, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodGet, "/api/users", api.manager, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeData[[]dto.UserDTO](t, w), 3)

	w = api.do(http.MethodGet, fmt.Sprintf("/api/users/%d", api.worker.ID), api.manager, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "worker@example.com", decodeData[dto.UserDTO](t, w).Email)
	assert.NotContains(t, w.Body.String(), "password")

	w = api.do(http.MethodGet, "/api/users/999", api.manager, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodPut, fmt.Sprintf("/api/users/%d", api.worker.ID), api.manager, map[string]any{
		"name": "Worker One",
		"role": "manager",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeData[dto.UserDTO](t, w)
	assert.Equal(t, "Worker One", updated.Name)
	assert.Equal(t, models.RoleManager, updated.Role)

	// The promoted user now passes the manager-only routes.
	w = api.do(http.MethodGet, "/api/users", api.worker, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodPut, fmt.Sprintf("/api/users/%d", api.worker.ID), api.manager, map[string]any{"role": "OWNER"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPut, fmt.Sprintf("/api/users/%d", api.worker.ID), api.manager, map[string]any{"isActive": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decodeData[dto.UserDTO](t, w).IsActive)

	// A deactivated user is locked out even with a valid token.
	w = api.do(http.MethodGet, "/api/me", api.worker, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodDelete, fmt.Sprintf("/api/users/%d", api.manager.ID), api.manager, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "cannot_delete_self", decodeError(t, w).Code)

	w = api.do(http.MethodDelete, fmt.Sprintf("/api/users/%d", api.other.ID), api.manager, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, fmt.Sprintf("/api/shifts/%d", s.ID), api.manager, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodGet, "/api/me", api.other, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
