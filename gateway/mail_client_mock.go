package gateway

import (
	"context"
	"sync"
)

type SentMail struct {
	TemplateID string
	Params     map[string]any
}

// MailMock records every dispatched message. SendFunc, when set, decides the
// outcome per call; otherwise every send succeeds.
type MailMock struct {
	lock sync.Mutex

	Sent     []SentMail
	SendFunc func(templateID string, params map[string]any) error
}

func (m *MailMock) Send(ctx context.Context, templateID string, params map[string]any) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.SendFunc != nil {
		if err := m.SendFunc(templateID, params); err != nil {
			return err
		}
	}

	m.Sent = append(m.Sent, SentMail{TemplateID: templateID, Params: params})
	return nil
}

func (m *MailMock) SentTo(templateID string) []SentMail {
	m.lock.Lock()
	defer m.lock.Unlock()

	var out []SentMail
	for _, s := range m.Sent {
		if s.TemplateID == templateID {
			out = append(out, s)
		}
	}
	return out
}
