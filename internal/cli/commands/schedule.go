package commands

import (
	"TimeCapsule/internal/config"
	"TimeCapsule/internal/model"
	"context"
	"fmt"
	"net/http"
	"time"
)

// parseDelivery принимает RFC3339 или дату YYYY-MM-DD (полночь по местному времени).
func parseDelivery(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid delivery date %q: use YYYY-MM-DD or RFC3339", s)
	}
	return t, nil
}

type scheduleCmd struct{}

func (scheduleCmd) Name() string        { return "schedule" }
func (scheduleCmd) Description() string { return "Schedule an entry for delivery to a contact" }
func (scheduleCmd) Usage() string       { return "schedule <entryId> <contactId> <date> [remind]" }

func (scheduleCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return ErrUsage
	}
	entryID, err := parseID(args[0])
	if err != nil {
		return err
	}
	contactID, err := parseID(args[1])
	if err != nil {
		return err
	}
	when, err := parseDelivery(args[2])
	if err != nil {
		return err
	}
	remind := len(args) == 4
	if remind && args[3] != "remind" {
		return ErrUsage
	}

	payload := map[string]any{
		"entryId":         entryID,
		"contactId":       contactID,
		"deliveryDate":    when,
		"reminderEnabled": remind,
	}
	var sc model.Schedule
	if err := call(ctx, cfg, http.MethodPost, "/api/schedules", payload, &sc); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Schedule %d: entry %d will be delivered on %s\n", sc.ID, sc.EntryID, sc.DeliveryDate.Local().Format("2006-01-02 15:04"))
	return nil
}

type unscheduleCmd struct{}

func (unscheduleCmd) Name() string        { return "unschedule" }
func (unscheduleCmd) Description() string { return "Cancel the delivery of an entry" }
func (unscheduleCmd) Usage() string       { return "unschedule <entryId>" }

func (unscheduleCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	entryID, err := parseID(args[0])
	if err != nil {
		return err
	}
	var sc model.Schedule
	if err := call(ctx, cfg, http.MethodGet, fmt.Sprintf("/api/entries/%d/schedule", entryID), nil, &sc); err != nil {
		return err
	}
	if err := call(ctx, cfg, http.MethodDelete, fmt.Sprintf("/api/schedules/%d", sc.ID), nil, nil); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Entry %d is private again\n", entryID)
	return nil
}

func init() {
	RegisterCmd(scheduleCmd{})
	RegisterCmd(unscheduleCmd{})
}
