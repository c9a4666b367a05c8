// Package w2w is the client for the WhenToWork AssignedShiftList API.
package w2w

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/models"
)

// ErrBadShape is returned when the response is valid JSON but neither the
// documented envelope nor a bare list. There is no safe default shift list
// to infer from an unknown shape.
var ErrBadShape = errors.New("w2w: unexpected payload shape")

type Client struct {
	BaseURL string
	// Token is sent in the Authorization header as-is, including any
	// "Bearer " prefix the tenant expects.
	Token      string
	HTTPClient *http.Client
}

// AssignedShifts fetches assigned-shift records for the inclusive date
// range. Dates are MM/DD/YYYY. The read path is strict: transport errors,
// non-2xx statuses, non-JSON bodies and unknown shapes all fail the call.
func (c *Client) AssignedShifts(ctx context.Context, startDate, endDate string) ([]models.RawShift, error) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://www4.whentowork.com/cgi-bin/w2wD.dll/api"
	}

	endpoint := fmt.Sprintf("%s/AssignedShiftList?start_date=%s&end_date=%s",
		c.BaseURL, url.QueryEscape(startDate), url.QueryEscape(endDate))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("w2w http error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return decodeShiftList(body)
}

// decodeShiftList tolerates the two shapes W2W tenants return: an envelope
// object holding the list under "AssignedShiftList", or the bare list.
func decodeShiftList(body []byte) ([]models.RawShift, error) {
	var probe any
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("w2w non-JSON response: %.300s", body)
	}

	switch probe.(type) {
	case map[string]any:
		var env struct {
			List json.RawMessage `json:"AssignedShiftList"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, err
		}
		if env.List == nil {
			return nil, ErrBadShape
		}
		var shifts []models.RawShift
		if err := json.Unmarshal(env.List, &shifts); err != nil {
			return nil, fmt.Errorf("w2w shift list: %w", err)
		}
		if shifts == nil {
			shifts = []models.RawShift{}
		}
		return shifts, nil
	case []any:
		var shifts []models.RawShift
		if err := json.Unmarshal(body, &shifts); err != nil {
			return nil, fmt.Errorf("w2w shift list: %w", err)
		}
		return shifts, nil
	default:
		return nil, ErrBadShape
	}
}
