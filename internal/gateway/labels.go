package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/primelabel/labelview/internal/core/domain"
)

// Label lookups are unauthenticated reads; responses are cached briefly so a
// QR code scanned twice in a row does not wake a sleeping upstream twice.

func (c *Client) LabelByIdentifier(ctx context.Context, code string) (*domain.Label, error) {
	path := "/api/labels/identifier/" + url.PathEscape(code)
	return c.fetchLabel(ctx, path)
}

func (c *Client) LabelByBatch(ctx context.Context, sponsor, trial, batch string) (*domain.Label, error) {
	path := fmt.Sprintf("/api/labels/%s/%s/batch/%s",
		url.PathEscape(sponsor), url.PathEscape(trial), url.PathEscape(batch))
	return c.fetchLabel(ctx, path)
}

func (c *Client) LabelByKit(ctx context.Context, sponsor, trial, kit string) (*domain.Label, error) {
	path := fmt.Sprintf("/api/labels/%s/%s/kit/%s",
		url.PathEscape(sponsor), url.PathEscape(trial), url.PathEscape(kit))
	return c.fetchLabel(ctx, path)
}

func (c *Client) fetchLabel(ctx context.Context, path string) (*domain.Label, error) {
	if cached, ok := c.labels.Get(path); ok {
		label := cached.(domain.Label)
		return &label, nil
	}

	var label domain.Label
	if err := c.do(ctx, http.MethodGet, path, "", nil, &label); err != nil {
		return nil, err
	}

	// Stored by value so cache entries cannot be mutated by callers.
	c.labels.SetDefault(path, label)
	return &label, nil
}
