// Package en is the client for the Emergency Networking crew-schedules API.
package en

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/models"
)

type Client struct {
	BaseURL string
	// Token is a bare JWT; the client adds the "Bearer " prefix.
	Token      string
	HTTPClient *http.Client
}

// PostSchedule publishes one crew-schedule document and returns whatever EN
// sent back. The write path is deliberately lenient: any HTTP status counts
// as sent, and a non-JSON body is wrapped in a status object instead of
// failing. Only transport errors are errors. EN reports validation problems
// in the response body, so the caller sees them either way.
func (c *Client) PostSchedule(ctx context.Context, p models.SchedulePayload) (map[string]any, error) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://app.emergencynetworking.com/department-api"
	}

	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/crew-schedules", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return map[string]any{"status": "ok", "text": string(body)}, nil
	}
	return out, nil
}
