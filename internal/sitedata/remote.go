package sitedata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RemoteClient reads and writes the site data document against the configured
// spreadsheet web-app endpoint.
type RemoteClient struct {
	endpoint string
	// fireAndForget covers deployments where the endpoint answers through an
	// opaque redirect and the response body cannot be read. Issuing the POST
	// without a network-level error then counts as tentative success.
	fireAndForget bool
	client        *http.Client
}

func NewRemoteClient(endpoint string, fireAndForget bool) *RemoteClient {
	return &RemoteClient{
		endpoint:      endpoint,
		fireAndForget: fireAndForget,
		client:        &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch returns the remote snapshot. Transport failures, non-success statuses
// and payloads without a catalog all report ok=false; the caller falls back
// to defaults instead of surfacing an error.
func (c *RemoteClient) Fetch(ctx context.Context) (Snapshot, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return Snapshot{}, false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Snapshot{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Snapshot{}, false
	}

	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return Snapshot{}, false
	}
	if !snap.HasCatalog() {
		return Snapshot{}, false
	}
	return snap, true
}

// Push POSTs the full snapshot as a JSON body. Saves are whole-snapshot
// overwrites, so a retried push is naturally idempotent.
func (c *RemoteClient) Push(ctx context.Context, snap Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("push site data: %w", err)
	}
	defer resp.Body.Close()

	if c.fireAndForget {
		// Response is opaque in this mode; drain and report tentative success.
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("push site data: HTTP %d: %s", resp.StatusCode, string(b))
	}
	return nil
}
