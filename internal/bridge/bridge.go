// Package bridge runs one W2W → EN sync end to end: select a window, fetch
// shifts for a padded range, build the payload, publish it unless empty.
package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/models"
	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/roster"
	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/schedule"
)

type ShiftSource interface {
	AssignedShifts(ctx context.Context, startDate, endDate string) ([]models.RawShift, error)
}

type ScheduleSink interface {
	PostSchedule(ctx context.Context, p models.SchedulePayload) (map[string]any, error)
}

type Bridge struct {
	Shifts    ShiftSource
	Schedules ScheduleSink
	Roster    *roster.Roster
	Zone      *time.Location
	Logger    zerolog.Logger
}

// Result summarizes one run. Exactly one of Posted and Skipped is true on
// success.
type Result struct {
	Posted   bool                   `json:"posted"`
	Skipped  bool                   `json:"skipped"`
	Reason   string                 `json:"reason,omitempty"`
	Payload  models.SchedulePayload `json:"payload"`
	Response map[string]any         `json:"response,omitempty"`
}

// Run executes one sync anchored at now. Before noon local time it publishes
// the day window, from noon on the night window. The fetch range is padded
// by one calendar day on each side so overnight shifts crossing the window
// edges are captured. Read failures are fatal for the run; an empty
// equipment list skips the publish instead of sending an empty document.
func (b *Bridge) Run(ctx context.Context, now time.Time) (Result, error) {
	now = now.In(b.Zone)
	w := schedule.SelectWindow(now)

	fetchStart := w.Start.AddDate(0, 0, -1).Format(schedule.DateLayout)
	fetchEnd := w.End.AddDate(0, 0, 1).Format(schedule.DateLayout)

	b.Logger.Info().
		Str("window_start", w.Start.Format(schedule.ISO8601)).
		Str("window_end", w.End.Format(schedule.ISO8601)).
		Str("fetch_start", fetchStart).
		Str("fetch_end", fetchEnd).
		Msg("fetching assigned shifts")

	shifts, err := b.Shifts.AssignedShifts(ctx, fetchStart, fetchEnd)
	if err != nil {
		return Result{}, fmt.Errorf("fetch assigned shifts: %w", err)
	}

	builder := schedule.Builder{Roster: b.Roster, Zone: b.Zone}
	built := builder.Build(shifts, w)
	for _, u := range built.Unmapped {
		b.Logger.Warn().
			Str("position_id", u.Position).
			Str("category_id", u.Category).
			Str("employee_id", u.Employee).
			Msg("position not mapped to equipment")
	}

	if len(built.Payload.Equipment) == 0 {
		b.Logger.Info().Msg("no assignments matched the window, skipping publish")
		return Result{
			Skipped: true,
			Reason:  "no assignments matched the window",
			Payload: built.Payload,
		}, nil
	}

	resp, err := b.Schedules.PostSchedule(ctx, built.Payload)
	if err != nil {
		return Result{}, fmt.Errorf("post crew schedule: %w", err)
	}

	b.Logger.Info().
		Int("equipment", len(built.Payload.Equipment)).
		Int("shifts", len(shifts)).
		Msg("crew schedule published")
	return Result{Posted: true, Payload: built.Payload, Response: resp}, nil
}
