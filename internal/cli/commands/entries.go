package commands

import (
	"TimeCapsule/internal/config"
	"TimeCapsule/internal/model"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"text/tabwriter"
	"time"
)

type entriesCmd struct{}

func (entriesCmd) Name() string        { return "entries" }
func (entriesCmd) Description() string { return "List journal entries with their schedules" }
func (entriesCmd) Usage() string       { return "entries [-type t] [-category id] [-scheduled]" }

func (entriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("entries", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	typ := fs.String("type", "", "entry type")
	category := fs.Int64("category", 0, "category id")
	scheduled := fs.Bool("scheduled", false, "only scheduled entries")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	// фильтры по типу и категории — плоский список, иначе — представление с расписаниями
	if *typ != "" || *category != 0 {
		q := url.Values{}
		if *typ != "" {
			q.Set("type", *typ)
		}
		if *category != 0 {
			q.Set("categoryId", fmt.Sprint(*category))
		}
		var list []model.Entry
		if err := call(ctx, cfg, http.MethodGet, "/api/entries?"+q.Encode(), nil, &list); err != nil {
			return err
		}
		views := make([]model.EntryWithSchedule, 0, len(list))
		for _, e := range list {
			views = append(views, model.EntryWithSchedule{Entry: e})
		}
		printEntries(views)
		return nil
	}

	path := "/api/entries/with-schedules"
	if *scheduled {
		path = "/api/entries/scheduled"
	}
	var views []model.EntryWithSchedule
	if err := call(ctx, cfg, http.MethodGet, path, nil, &views); err != nil {
		return err
	}
	printEntries(views)
	return nil
}

func printEntries(views []model.EntryWithSchedule) {
	if len(views) == 0 {
		fmt.Fprintln(Out, "No entries")
		return
	}
	tw := tabwriter.NewWriter(Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tTITLE\tVISIBILITY\tDELIVERY\tTO")
	for _, v := range views {
		delivery, to := "-", "-"
		if v.Schedule != nil {
			delivery = v.Schedule.DeliveryDate.Local().Format("2006-01-02 15:04")
			if v.Schedule.Contact != nil {
				to = v.Schedule.Contact.Name
			} else {
				to = fmt.Sprintf("#%d (deleted)", v.Schedule.ContactID)
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", v.ID, v.Type, v.Title, v.Visibility, delivery, to)
	}
	_ = tw.Flush()
}

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Add a text entry" }
func (addCmd) Usage() string       { return "add [-category <id>] <title> [content...]" }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	category := fs.Int64("category", 0, "category id")
	if err := fs.Parse(args); err != nil || fs.NArg() < 1 {
		return ErrUsage
	}
	payload := map[string]any{
		"title": fs.Arg(0),
		"type":  model.EntryTypeText,
	}
	if fs.NArg() > 1 {
		payload["content"] = strings.Join(fs.Args()[1:], " ")
	}
	if *category != 0 {
		payload["categoryId"] = *category
	}
	var e model.Entry
	if err := call(ctx, cfg, http.MethodPost, "/api/entries", payload, &e); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Entry %d created\n", e.ID)
	return nil
}

type showCmd struct{}

func (showCmd) Name() string        { return "show" }
func (showCmd) Description() string { return "Show one entry" }
func (showCmd) Usage() string       { return "show <entryId>" }

func (showCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	var e model.Entry
	if err := call(ctx, cfg, http.MethodGet, fmt.Sprintf("/api/entries/%d", id), nil, &e); err != nil {
		return err
	}
	fmt.Fprintf(Out, "#%d %s [%s, %s]\n", e.ID, e.Title, e.Type, e.Visibility)
	fmt.Fprintf(Out, "created: %s\n", e.CreatedAt.Local().Format(time.RFC1123))
	fmt.Fprintf(Out, "content: %s\n", orDash(e.Content))
	fmt.Fprintf(Out, "media:   %s\n", orDash(e.MediaURL))
	return nil
}

type rmCmd struct{}

func (rmCmd) Name() string        { return "rm" }
func (rmCmd) Description() string { return "Delete an entry and its schedule" }
func (rmCmd) Usage() string       { return "rm <entryId>" }

func (rmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := call(ctx, cfg, http.MethodDelete, fmt.Sprintf("/api/entries/%d", id), nil, nil); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Entry %d deleted\n", id)
	return nil
}

func init() {
	RegisterCmd(entriesCmd{})
	RegisterCmd(addCmd{})
	RegisterCmd(showCmd{})
	RegisterCmd(rmCmd{})
}
