// Package source provides the candidate lists an autocomplete lookup can read.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gocomplete/internal/dynamo"
)

// Static serves a fixed in-memory list
type Static struct {
	items []string
}

// NewStatic copies items into a Static source
func NewStatic(items []string) *Static {
	return &Static{items: append([]string(nil), items...)}
}

// Candidates returns the list. It never fails.
func (s *Static) Candidates(context.Context) ([]string, error) {
	return s.items, nil
}

// HTTP fetches a JSON array of strings with a GET request
type HTTP struct {
	endpoint string
	client   *http.Client
}

// NewHTTP creates an HTTP source. A zero timeout means no client timeout.
func NewHTTP(endpoint string, timeout time.Duration) *HTTP {
	return &HTTP{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Candidates performs one GET and decodes the body
func (h *HTTP) Candidates(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch candidates: %s returned %s", h.endpoint, resp.Status)
	}

	var items []string
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode candidates: %w", err)
	}
	return items, nil
}

// Dynamo reads one string attribute from every item of a table
type Dynamo struct {
	client    *dynamo.Client
	table     string
	attribute string
}

// NewDynamo creates a Dynamo source over an existing client
func NewDynamo(client *dynamo.Client, table, attribute string) *Dynamo {
	return &Dynamo{
		client:    client,
		table:     table,
		attribute: attribute,
	}
}

// Candidates scans the table
func (d *Dynamo) Candidates(ctx context.Context) ([]string, error) {
	return d.client.ScanStrings(ctx, d.table, d.attribute)
}

// Check verifies the configured table exists
func (d *Dynamo) Check(ctx context.Context) error {
	ok, err := d.client.HasTable(ctx, d.table)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("table %q not found in %s", d.table, d.client.Region())
	}
	return nil
}
