package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"dsa_tracker_backend/internal/config"
)

// Mailer 通过HTTP邮件服务（SendGrid兼容的v3接口）发送邮件
type Mailer struct {
	cfg        config.EmailConfig
	httpClient *http.Client
}

func New(cfg config.EmailConfig) *Mailer {
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "https://api.sendgrid.com"
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	return &Mailer{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled 未配置APIKey时邮件功能整体关闭
func (m *Mailer) Enabled() bool {
	return m.cfg.APIKey != ""
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type personalization struct {
	To []address `json:"to"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

// Send 发送一封HTML邮件
func (m *Mailer) Send(ctx context.Context, toEmail, toName, subject, html string) error {
	if !m.Enabled() {
		return fmt.Errorf("mailer not configured")
	}

	payload := sendRequest{
		Personalizations: []personalization{{To: []address{{Email: toEmail, Name: toName}}}},
		From:             address{Email: m.cfg.FromEmail, Name: m.cfg.FromName},
		Subject:          subject,
		Content:          []content{{Type: "text/html", Value: html}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.APIBaseURL+"/v3/mail/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail API returned status %d", resp.StatusCode)
	}
	return nil
}
