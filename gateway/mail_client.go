package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"hoteldesk/entity"
)

// MailClient dispatches templated messages through the external mail service.
// The service resolves the template server-side; the client only supplies the
// template id and its parameters, plus an optional binary attachment inside
// the parameter set.
type MailClient struct {
	baseURL   string
	serviceID string
	publicKey string
	client    *http.Client
}

func NewMailClient(baseURL, serviceID, publicKey string) *MailClient {
	return &MailClient{
		baseURL:   baseURL,
		serviceID: serviceID,
		publicKey: publicKey,
		client:    newHTTPClient(),
	}
}

type sendMailRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

// Send delivers one templated message. Each call is an independent side
// effect; there is no compensation for messages already accepted.
func (c *MailClient) Send(ctx context.Context, templateID string, params map[string]any) error {
	body, err := json.Marshal(sendMailRequest{
		ServiceID:      c.serviceID,
		TemplateID:     templateID,
		UserID:         c.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return err
	}

	u := c.baseURL + "/api/v1.0/email/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail service returned %d (%s): %w", resp.StatusCode, bytes.TrimSpace(detail), entity.ErrDispatchFailure)
	}

	return nil
}
