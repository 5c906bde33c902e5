package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"

	"TimeCapsule/internal/cli/auth"
)

// AuthCookie — имя cookie сессии сервера.
const AuthCookie = "auth_token"

// Do sends a request with an optional JSON payload. If token is non-empty, it is passed as auth cookie.
func Do(ctx context.Context, method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return send(req, token)
}

// PostJSON sends a JSON POST request.
func PostJSON(ctx context.Context, url string, payload any, token string) (*http.Response, []byte, error) {
	return Do(ctx, http.MethodPost, url, payload, token)
}

// Upload отправляет файл как multipart/form-data в поле "file".
func Upload(ctx context.Context, url, path, contentType, token string) (*http.Response, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(path)))
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return nil, nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return send(req, token)
}

func send(req *http.Request, token string) (*http.Response, []byte, error) {
	if token != "" {
		req.Header.Set("Cookie", AuthCookie+"="+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, body, nil
}

// PersistAuthFromResponse извлекает auth cookie из ответа и сохраняет его в хранилище токена.
func PersistAuthFromResponse(resp *http.Response, store auth.TokenStore) error {
	for _, c := range resp.Cookies() {
		if c.Name == AuthCookie && c.Value != "" {
			return store.Save(c.Value)
		}
	}
	return fmt.Errorf("no auth cookie in response")
}

// ErrorMessage достаёт поле message из JSON-ошибки сервера, иначе возвращает тело как есть.
func ErrorMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &e); err != nil || e.Message == "" {
		return string(bytes.TrimSpace(body))
	}
	if len(e.Errors) > 0 {
		return fmt.Sprintf("%s: %s %s", e.Message, e.Errors[0].Field, e.Errors[0].Message)
	}
	return e.Message
}
