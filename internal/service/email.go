package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
	"github.com/templui/lifecoach/internal/markdown"
	"github.com/templui/lifecoach/internal/model"
)

type EmailService struct {
	client    *resend.Client
	markdown  *markdown.Parser
	fromEmail string
	isDev     bool
	appURL    string
	appName   string
}

func NewEmailService(apiKey, fromEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		markdown:  markdown.NewParser(),
		fromEmail: fromEmail,
		isDev:     isDev,
		appURL:    appURL,
		appName:   appName,
	}
}

func (s *EmailService) SendAssessmentReport(ctx context.Context, email, name string, result *model.AssessmentResult, insights model.AssessmentInsights) error {
	subject, body := assessmentReportTemplate(name, s.appURL, s.appName, result, insights)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "assessment_report", "to", email, "subject", subject, "assessment_id", result.ID)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	html, err := s.markdown.HTML(body)
	if err != nil {
		return fmt.Errorf("failed to render assessment report: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: subject,
		Text:    body,
		Html:    html,
	}

	_, err = s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "type", "assessment_report", "to", email)
	}
	return err
}
