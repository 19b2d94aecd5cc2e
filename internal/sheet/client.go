// Package sheet talks to the Apps Script web app backing the directory: one
// GET that dumps the barista and review tables, one POST that appends a
// review row. When no endpoint is configured the client runs in
// demonstration mode and never touches the network.
package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrUnconfigured means no endpoint was set; callers fall back to
	// sample data and synthesized submissions.
	ErrUnconfigured = errors.New("sheet endpoint not configured")

	// ErrNotJSON usually means the script deployment is misconfigured and
	// the endpoint served an HTML error page.
	ErrNotJSON = errors.New("endpoint returned non-JSON content, check the script deployment settings")
)

const demoSubmitDelay = time.Second

// SubmissionError carries a failure message the script itself reported, as
// opposed to a transport failure. The message is meant for the submitter.
type SubmissionError struct {
	Message string
}

func (e *SubmissionError) Error() string {
	return e.Message
}

type Client struct {
	endpoint string
	client   *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Configured reports whether a real endpoint is set.
func (c *Client) Configured() bool {
	return c.endpoint != ""
}

// Tables are the raw spreadsheet dumps, header rows included. Cells are
// stringified at decode time so the normalizer always sees strings.
type Tables struct {
	Baristas [][]string
	Reviews  [][]string
}

// cellValue tolerates the loosely typed cells the script emits: strings
// decode as-is, numbers, bools and nulls are stringified.
type cellValue string

func (c *cellValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = cellValue(s)
		return nil
	}
	if string(data) == "null" {
		*c = ""
		return nil
	}
	*c = cellValue(data)
	return nil
}

type tablesResponse struct {
	Baristas [][]cellValue `json:"baristas"`
	Reviews  [][]cellValue `json:"reviews"`
	Error    string        `json:"error"`
}

// FetchTables downloads both tables. A cache-busting timestamp is appended
// to every request so the script's CDN never serves a stale dump.
func (c *Client) FetchTables(ctx context.Context) (*Tables, error) {
	if !c.Configured() {
		return nil, ErrUnconfigured
	}

	sep := "?"
	if strings.Contains(c.endpoint, "?") {
		sep = "&"
	}
	url := c.endpoint + sep + "t=" + strconv.FormatInt(time.Now().UnixMilli(), 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		return nil, ErrNotJSON
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch sheet: unexpected status %s", resp.Status)
	}

	var payload tablesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode sheet response: %w", err)
	}
	if payload.Error != "" {
		return nil, fmt.Errorf("script error: %s", payload.Error)
	}

	return &Tables{
		Baristas: toStringRows(payload.Baristas),
		Reviews:  toStringRows(payload.Reviews),
	}, nil
}

func toStringRows(rows [][]cellValue) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = string(c)
		}
		out[i] = cells
	}
	return out
}

// SubmissionPayload is the review row appended by the script. Field names
// are the script's contract, hence the camelCase.
type SubmissionPayload struct {
	BaristaID  string  `json:"baristaId"`
	Rating     float64 `json:"rating"`
	Review     string  `json:"review"`
	CustomerID string  `json:"customerId"`
	Username   string  `json:"username"`
	Branch     string  `json:"branch"`
	Image      string  `json:"image,omitempty"`
}

type submitResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// SubmitReview posts the payload. The body is JSON but goes out as
// text/plain: Apps Script only skips the CORS preflight for simple requests.
// In demonstration mode the call sleeps briefly and reports success.
func (c *Client) SubmitReview(ctx context.Context, payload SubmissionPayload) error {
	if !c.Configured() {
		select {
		case <-time.After(demoSubmitDelay):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit review: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("submit review: server error %s", resp.Status)
	}

	// the script answers JSON on failure but any 2xx body counts as success
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("submit review: %w", err)
	}
	var result submitResponse
	if err := json.Unmarshal(raw, &result); err == nil && result.Status == "error" {
		if result.Error != "" {
			return &SubmissionError{Message: result.Error}
		}
		return &SubmissionError{Message: "the server reported an error"}
	}

	return nil
}

var formulaPrefixRe = regexp.MustCompile(`^[=+\-@]`)

// SanitizeField defuses spreadsheet formula injection: a cell starting with
// =, +, - or @ gets a literal quote prefix so the sheet treats it as text.
func SanitizeField(s string) string {
	trimmed := strings.TrimSpace(s)
	if formulaPrefixRe.MatchString(trimmed) {
		return "'" + trimmed
	}
	return s
}
