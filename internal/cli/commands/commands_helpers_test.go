package commands

import (
	"TimeCapsule/internal/config"
	"bytes"
	"path/filepath"
	"testing"
)

// withTempConfig возвращает конфиг клиента с токеном во временном каталоге.
func withTempConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL: serverURL,
		TokenFile: filepath.Join(t.TempDir(), "token"),
	}
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
