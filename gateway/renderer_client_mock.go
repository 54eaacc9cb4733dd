package gateway

import (
	"context"
	"sync"
)

// RendererMock returns a fixed PDF payload and records the submitted markup.
type RendererMock struct {
	lock sync.Mutex

	Rendered  []string
	RenderErr error
}

func (m *RendererMock) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.RenderErr != nil {
		return nil, m.RenderErr
	}

	m.Rendered = append(m.Rendered, html)
	return []byte("%PDF-1.4 mock"), nil
}

func (m *RendererMock) RenderCount() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.Rendered)
}
