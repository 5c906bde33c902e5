package commands

import (
	"TimeCapsule/internal/cli/api"
	"TimeCapsule/internal/cli/auth"
	"TimeCapsule/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

func tokenStore(cfg *config.Config) auth.TokenStore {
	return auth.TokenStore{Path: cfg.TokenFile}
}

// call выполняет запрос к API от имени сохранённой сессии и декодирует ответ в out.
// Без сохранённого токена запрос уходит анонимно: в демо-режиме сервер подставит демо-пользователя.
func call(ctx context.Context, cfg *config.Config, method, path string, payload, out any) error {
	token, _ := tokenStore(cfg).Load()
	resp, body, err := api.Do(ctx, method, endpoint(cfg, path), payload, token)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, api.ErrorMessage(body))
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}
	return id, nil
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
