package commands

import (
	"TimeCapsule/internal/cli/api"
	"TimeCapsule/internal/config"
	"TimeCapsule/internal/model"
	"context"
	"errors"
	"fmt"
	"net/http"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create account and store auth cookie" }
func (registerCmd) Usage() string       { return "register <login> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	req := LoginRequest{Login: args[0], Password: args[1]}
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, "/api/user/register"), req, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		if err := api.PersistAuthFromResponse(resp, tokenStore(cfg)); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		fmt.Fprintln(Out, "Registered successfully")
		return nil
	case http.StatusConflict:
		return errors.New("login already in use")
	default:
		return fmt.Errorf("server error: %s", api.ErrorMessage(body))
	}
}

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Show the current user" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var u model.User
	if err := call(ctx, cfg, http.MethodGet, "/api/user/me", nil, &u); err != nil {
		return err
	}
	fmt.Fprintf(Out, "%s (id %d)\n", u.Username, u.ID)
	return nil
}

func init() {
	RegisterCmd(registerCmd{})
	RegisterCmd(whoamiCmd{})
}
