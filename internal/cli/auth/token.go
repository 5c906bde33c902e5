package auth

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoToken — клиент ещё не входил.
var ErrNoToken = errors.New("not logged in")

// TokenStore — файловое хранилище auth‑токена CLI.
type TokenStore struct {
	Path string
}

// Save сохраняет auth‑токен в файл.
func (s TokenStore) Save(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

// Load читает auth‑токен из файла.
func (s TokenStore) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Clear удаляет токен. Отсутствие файла ошибкой не считается.
func (s TokenStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
