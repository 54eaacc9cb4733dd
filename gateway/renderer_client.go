package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hoteldesk/entity"
)

// RendererClient drives the external document renderer: it captures the
// submitted markup as a raster image and embeds it into a single-page PDF
// sized to the raster's aspect ratio. Rendering is an exclusive operation on
// the renderer side, so callers must not overlap requests for the same batch.
type RendererClient struct {
	baseURL string
	client  *http.Client
}

func NewRendererClient(baseURL string) *RendererClient {
	return &RendererClient{
		baseURL: baseURL,
		client:  newHTTPClient(),
	}
}

// RenderPDF returns the rendered single-page PDF for the given markup.
func (c *RendererClient) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	u := c.baseURL + "/render/pdf"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/html")
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("renderer returned %d: %w", resp.StatusCode, entity.ErrRenderFailure)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading rendered document: %w", err)
	}

	return pdf, nil
}
