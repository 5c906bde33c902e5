package handlers_test

import (
	"TimeCapsule/internal/config"
	"TimeCapsule/internal/handlers"
	"TimeCapsule/internal/middleware"
	"TimeCapsule/internal/repo"
	"TimeCapsule/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	router     http.Handler
	cfg        *config.Config
	demoUserID int64
}

// newTestEnv поднимает роутер поверх хранилища в памяти с засеянным демо-пользователем.
func newTestEnv(t *testing.T, demo bool, policy repo.Policy) *testEnv {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", DemoMode: demo, MediaMaxMB: 1, CORSOrigins: "http://localhost:5173"}
	logger := zap.NewNop().Sugar()

	store := repo.NewMemStorage(policy)
	userSvc := service.NewUserService(store)
	journalSvc := service.NewJournalService(store, logger)
	mediaSvc := service.NewMediaService(repo.NewMemBlobRepository(), 16, logger)

	demoID, err := service.Seed(context.Background(), userSvc, journalSvc)
	require.NoError(t, err)

	h := handlers.NewHandler(userSvc, journalSvc, mediaSvc, logger, cfg, demoID)
	return &testEnv{router: h.Router, cfg: cfg, demoUserID: demoID}
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

// do выполняет запрос; userID=0 — без cookie.
func (e *testEnv) do(t *testing.T, method, path, body string, userID int64) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		addAuthCookie(t, req, userID, e.cfg.AuthSecret)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&v), rr.Body.String())
	return v
}
