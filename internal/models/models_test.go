package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFlexStringDecodesMixedTypes(t *testing.T) {
	var s RawShift
	raw := `{
		"W2W_EMPLOYEE_ID": 318972808,
		"POSITION_ID": "127517298",
		"CATEGORY_ID": null,
		"START_DATE": "10/30/2025",
		"START_TIME": "6am",
		"END_DATE": "10/30/2025",
		"END_TIME": "6pm"
	}`
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.EmployeeID != "318972808" {
		t.Fatalf("expected numeric id as string, got %q", s.EmployeeID)
	}
	if s.PositionID != "127517298" || s.CategoryID != "" {
		t.Fatalf("unexpected fields: %+v", s)
	}
}

func TestFlexStringRejectsNonScalar(t *testing.T) {
	var f FlexString
	if err := json.Unmarshal([]byte(`{"nested": true}`), &f); err == nil {
		t.Fatalf("expected error for object value")
	}
}

func TestSchedulePayloadJSONContract(t *testing.T) {
	p := SchedulePayload{
		Start: "2025-10-30T06:00:00-05:00",
		End:   "2025-10-30T18:00:00-05:00",
		Equipment: []CrewEquipment{
			{
				CallSign: "E71",
				Users: []CrewUser{
					{ID: "100", Start: "2025-10-30T06:00:00-05:00", End: "2025-10-30T18:00:00-05:00"},
				},
			},
		},
	}
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(b)

	// Null fields must serialize as explicit nulls, not be omitted.
	for _, want := range []string{`"notes":null`, `"primary_action":null`, `"secondary_action":null`, `"call_sign":"E71"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("payload missing %s: %s", want, out)
		}
	}
}
