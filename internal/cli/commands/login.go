package commands

import (
	"TimeCapsule/internal/cli/api"
	"TimeCapsule/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
)

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store auth cookie" }
func (loginCmd) Usage() string       { return "login <login> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	req := LoginRequest{Login: args[0], Password: args[1]}
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, "/api/user/login"), req, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		if err := api.PersistAuthFromResponse(resp, tokenStore(cfg)); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		fmt.Fprintln(Out, "Logged in successfully")
		return nil
	case http.StatusUnauthorized:
		return errors.New("invalid login or password")
	default:
		return fmt.Errorf("server error: %s", api.ErrorMessage(body))
	}
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget stored auth cookie" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := tokenStore(cfg).Clear(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
}
