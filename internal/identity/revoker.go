package identity

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oggyb/campus-connect/internal/config"
)

// Revoker deletes an external identity at the provider.
type Revoker interface {
	Revoke(ctx context.Context, externalID string) error
}

// NewRevoker returns an AdminClient when the provider admin API is
// configured, otherwise a NoopRevoker.
func NewRevoker(cfg *config.Config) Revoker {
	if cfg.Auth.AdminURL == "" || cfg.Auth.AdminKey == "" {
		return NoopRevoker{}
	}
	return NewAdminClient(cfg.Auth.AdminURL, cfg.Auth.AdminKey)
}

// AdminClient calls DELETE {base}/admin/users/{id} with the service key.
type AdminClient struct {
	baseURL string
	key     string
	http    *http.Client
}

func NewAdminClient(baseURL, key string) *AdminClient {
	return &AdminClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *AdminClient) Revoke(ctx context.Context, externalID string) error {
	endpoint := c.baseURL + "/admin/users/" + url.PathEscape(externalID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("revoke identity %s: %w", externalID, err)
	}
	defer resp.Body.Close()

	// already gone counts as revoked
	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("revoke identity %s: status %d: %s", externalID, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// NoopRevoker is used when no admin API is configured.
type NoopRevoker struct{}

func (NoopRevoker) Revoke(context.Context, string) error { return nil }
