package schedule

import (
	"strings"
	"time"

	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/models"
	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/roster"
)

// Builder turns raw W2W shifts into a grouped EN schedule payload for one
// window. It carries only immutable lookup data and is safe to reuse across
// runs.
type Builder struct {
	Roster *roster.Roster
	Zone   *time.Location
}

// UnmappedPosition records a shift whose (position, category) pair had no
// equipment rule. Reportable, not fatal: the row is skipped and the caller
// logs the miss.
type UnmappedPosition struct {
	Position string
	Category string
	Employee string
}

type BuildResult struct {
	Payload  models.SchedulePayload
	Unmapped []UnmappedPosition
}

// Build produces the payload for the window. Standing crews are seeded
// first, spanning the whole window; shifts are then applied in input order.
// Overlapping or duplicate assignments for the same person under one call
// sign are kept as separate entries; downstream display handles them.
func (b *Builder) Build(shifts []models.RawShift, w Window) BuildResult {
	var result BuildResult

	groups := []*models.CrewEquipment{}
	byCallSign := map[string]*models.CrewEquipment{}
	add := func(callSign string, u models.CrewUser) {
		g, ok := byCallSign[callSign]
		if !ok {
			g = &models.CrewEquipment{CallSign: callSign}
			byCallSign[callSign] = g
			groups = append(groups, g)
		}
		g.Users = append(g.Users, u)
	}
	seeded := func(callSign, enID string) bool {
		g, ok := byCallSign[callSign]
		if !ok {
			return false
		}
		for _, u := range g.Users {
			if u.ID == enID {
				return true
			}
		}
		return false
	}

	for _, crew := range b.Roster.Standing {
		for _, enID := range crew.Members {
			if seeded(crew.CallSign, enID) {
				continue
			}
			add(crew.CallSign, models.CrewUser{
				ID:    enID,
				Start: w.Start.Format(ISO8601),
				End:   w.End.Format(ISO8601),
			})
		}
	}

	for _, s := range shifts {
		emp := strings.TrimSpace(string(s.EmployeeID))
		pos := strings.TrimSpace(string(s.PositionID))
		cat := strings.TrimSpace(string(s.CategoryID))
		startDate := strings.TrimSpace(string(s.StartDate))
		startTime := strings.TrimSpace(string(s.StartTime))
		endDate := strings.TrimSpace(string(s.EndDate))
		endTime := strings.TrimSpace(string(s.EndTime))

		if b.Roster.Ignored(pos) {
			continue
		}
		if emp == "" || pos == "" || startDate == "" || startTime == "" || endDate == "" || endTime == "" {
			continue
		}

		enID, ok := b.Roster.PersonID(emp)
		if !ok || b.Roster.Unassigned(enID) {
			continue
		}

		callSign, ok := b.Roster.CallSign(pos, cat)
		if !ok {
			result.Unmapped = append(result.Unmapped, UnmappedPosition{
				Position: pos,
				Category: cat,
				Employee: emp,
			})
			continue
		}

		start, err := NormalizeLocal(startDate, startTime, b.Zone)
		if err != nil {
			continue
		}
		end, err := NormalizeLocal(endDate, endTime, b.Zone)
		if err != nil {
			continue
		}
		// An end at or before the start means the shift wraps past
		// midnight.
		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}

		cs, ce, ok := Clip(start, end, w)
		if !ok {
			continue
		}

		add(callSign, models.CrewUser{
			ID:    enID,
			Start: cs.Format(ISO8601),
			End:   ce.Format(ISO8601),
		})
	}

	equipment := make([]models.CrewEquipment, 0, len(groups))
	for _, g := range groups {
		equipment = append(equipment, *g)
	}
	result.Payload = models.SchedulePayload{
		Start:     w.Start.Format(ISO8601),
		End:       w.End.Format(ISO8601),
		Equipment: equipment,
	}
	return result
}
