package commands

import (
	"TimeCapsule/internal/config"
	"TimeCapsule/internal/model"
	"context"
	"fmt"
	"net/http"
	"strings"
	"text/tabwriter"
)

type contactsCmd struct{}

func (contactsCmd) Name() string        { return "contacts" }
func (contactsCmd) Description() string { return "List contacts" }
func (contactsCmd) Usage() string       { return "contacts" }

func (contactsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var list []model.Contact
	if err := call(ctx, cfg, http.MethodGet, "/api/contacts", nil, &list); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPHONE\tEMAIL")
	for _, c := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.ID, c.Name, orDash(c.PhoneNumber), orDash(c.Email))
	}
	return tw.Flush()
}

type contactAddCmd struct{}

func (contactAddCmd) Name() string        { return "contact-add" }
func (contactAddCmd) Description() string { return "Add a contact with an email or phone" }
func (contactAddCmd) Usage() string       { return "contact-add <name> [email|phone]" }

func (contactAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	payload := map[string]any{"name": args[0]}
	if len(args) == 2 {
		if strings.Contains(args[1], "@") {
			payload["email"] = args[1]
		} else {
			payload["phoneNumber"] = args[1]
		}
	}
	var c model.Contact
	if err := call(ctx, cfg, http.MethodPost, "/api/contacts", payload, &c); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Contact %d created\n", c.ID)
	return nil
}

type categoriesCmd struct{}

func (categoriesCmd) Name() string        { return "categories" }
func (categoriesCmd) Description() string { return "List categories" }
func (categoriesCmd) Usage() string       { return "categories" }

func (categoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var list []model.Category
	if err := call(ctx, cfg, http.MethodGet, "/api/categories", nil, &list); err != nil {
		return err
	}
	for _, c := range list {
		fmt.Fprintf(Out, "%d\t%s\n", c.ID, c.Name)
	}
	return nil
}

type categoryAddCmd struct{}

func (categoryAddCmd) Name() string        { return "category-add" }
func (categoryAddCmd) Description() string { return "Add a category" }
func (categoryAddCmd) Usage() string       { return "category-add <name>" }

func (categoryAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	var c model.Category
	if err := call(ctx, cfg, http.MethodPost, "/api/categories", map[string]any{"name": args[0]}, &c); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Category %d created\n", c.ID)
	return nil
}

func init() {
	RegisterCmd(contactsCmd{})
	RegisterCmd(contactAddCmd{})
	RegisterCmd(categoriesCmd{})
	RegisterCmd(categoryAddCmd{})
}
