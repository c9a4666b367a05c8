package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexString decodes a JSON field that W2W tenants emit inconsistently:
// some send strings, some send bare numbers, some send null.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flex string: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*f = FlexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

// RawShift is one assigned-shift record as returned by W2W. Every field may
// be absent or malformed; the schedule builder treats the record as loosely
// typed and rejects rows it cannot use.
type RawShift struct {
	EmployeeID FlexString `json:"W2W_EMPLOYEE_ID"`
	PositionID FlexString `json:"POSITION_ID"`
	CategoryID FlexString `json:"CATEGORY_ID"`
	StartDate  FlexString `json:"START_DATE"`
	StartTime  FlexString `json:"START_TIME"`
	EndDate    FlexString `json:"END_DATE"`
	EndTime    FlexString `json:"END_TIME"`
}

// CrewUser is one person on a piece of equipment for a clipped time range.
// Instants are ISO-8601 with a numeric UTC offset.
type CrewUser struct {
	ID    string  `json:"id"`
	Start string  `json:"start"`
	End   string  `json:"end"`
	Notes *string `json:"notes"`
}

// CrewEquipment groups users under an EN call sign. The action fields are
// opaque pass-through and stay null.
type CrewEquipment struct {
	CallSign        string     `json:"call_sign"`
	PrimaryAction   *string    `json:"primary_action"`
	SecondaryAction *string    `json:"secondary_action"`
	Users           []CrewUser `json:"users"`
}

// SchedulePayload is the crew-schedule document posted to EN. Built fresh
// every run; it has no identity beyond the window it covers.
type SchedulePayload struct {
	Start     string          `json:"start"`
	End       string          `json:"end"`
	Notes     *string         `json:"notes"`
	Equipment []CrewEquipment `json:"equipment"`
}
