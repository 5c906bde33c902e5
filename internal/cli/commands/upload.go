package commands

import (
	"TimeCapsule/internal/cli/api"
	"TimeCapsule/internal/config"
	"TimeCapsule/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
)

type recordCmd struct{}

func (recordCmd) Name() string        { return "record" }
func (recordCmd) Description() string { return "Upload an audio or video file as a new entry" }
func (recordCmd) Usage() string       { return "record <audio|video> <file> <title>" }

func (recordCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	typ := model.EntryType(args[0])
	if typ != model.EntryTypeAudio && typ != model.EntryTypeVideo {
		return ErrUsage
	}
	path, title := args[1], args[2]

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = string(typ) + "/webm"
	}

	token, _ := tokenStore(cfg).Load()
	resp, body, err := api.Upload(ctx, endpoint(cfg, "/api/media"), path, contentType, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("upload failed (%d): %s", resp.StatusCode, api.ErrorMessage(body))
	}
	var uploaded struct {
		MediaURL string `json:"mediaUrl"`
	}
	if err := json.Unmarshal(body, &uploaded); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	var e model.Entry
	payload := map[string]any{"title": title, "type": typ, "mediaUrl": uploaded.MediaURL}
	if err := call(ctx, cfg, http.MethodPost, "/api/entries", payload, &e); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Entry %d created with %s\n", e.ID, uploaded.MediaURL)
	return nil
}

func init() { RegisterCmd(recordCmd{}) }
