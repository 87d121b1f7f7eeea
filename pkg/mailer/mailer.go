package mailer

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/Manzzzx/barasakti/config"
	"github.com/Manzzzx/barasakti/internal/model"
	"github.com/Manzzzx/barasakti/pkg/logger"
	"github.com/Masterminds/sprig/v3"
	"go.uber.org/zap"
)

// Notifier is the commit-step notification collaborator. Failures are
// surfaced to the caller, which may treat them as non-fatal.
type Notifier interface {
	InquiryReceived(ctx context.Context, inquiry *model.Inquiry) error
	OrderReceived(ctx context.Context, order *model.Order) error
}

const inquiryTemplate = `To: {{ .Mail.SalesInbox }}
From: {{ .Mail.FromName }} <{{ .Mail.FromAddress }}>
Subject: [{{ .Inquiry.InquiryType | upper }}] {{ .Inquiry.Subject }}

New inquiry {{ .Inquiry.ID }} from {{ .Inquiry.Name }} <{{ .Inquiry.Email }}>
{{- if .Inquiry.Company }}
Company: {{ .Inquiry.Company }}
{{- end }}
Preferred contact: {{ .Inquiry.PreferredContact }}
Received: {{ .Inquiry.CreatedAt | date "2006-01-02 15:04:05" }}

{{ .Inquiry.Message | trim }}
`

const orderTemplate = `To: {{ .Order.CustomerEmail }}
From: {{ .Mail.FromName }} <{{ .Mail.FromAddress }}>
Subject: Order {{ .Order.ID }} received

Hi {{ .Order.CustomerName }},

We received your order {{ .Order.ID }} ({{ len (.Order.Items.Data) }} item(s), total {{ .Order.TotalAmount | printf "%.0f" }}).
Payment method: {{ .Order.PaymentMethod | replace "_" " " }}
Status: {{ .Order.Status }}

Our sales team will confirm availability and delivery shortly.

{{ .Mail.FromName }}
`

// LogMailer renders the confirmation templates and writes them to the log.
// It stands in for a real dispatch provider; swapping it out does not touch
// the submission pipeline.
type LogMailer struct {
	cfg         config.MailConfig
	inquiryTmpl *template.Template
	orderTmpl   *template.Template
}

func NewLogMailer(cfg config.MailConfig) (*LogMailer, error) {
	inquiryTmpl, err := template.New("inquiry").Funcs(sprig.TxtFuncMap()).Parse(inquiryTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse inquiry template: %w", err)
	}

	orderTmpl, err := template.New("order").Funcs(sprig.TxtFuncMap()).Parse(orderTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse order template: %w", err)
	}

	return &LogMailer{
		cfg:         cfg,
		inquiryTmpl: inquiryTmpl,
		orderTmpl:   orderTmpl,
	}, nil
}

func (m *LogMailer) InquiryReceived(_ context.Context, inquiry *model.Inquiry) error {
	var buf bytes.Buffer
	data := map[string]any{"Mail": m.cfg, "Inquiry": inquiry}
	if err := m.inquiryTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render inquiry notification: %w", err)
	}

	logger.GetLogger().Info("Inquiry notification rendered",
		zap.String("inquiry_id", inquiry.ID),
		zap.String("recipient", m.cfg.SalesInbox),
		zap.String("body", buf.String()),
	)
	return nil
}

func (m *LogMailer) OrderReceived(_ context.Context, order *model.Order) error {
	var buf bytes.Buffer
	data := map[string]any{"Mail": m.cfg, "Order": order}
	if err := m.orderTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render order notification: %w", err)
	}

	logger.GetLogger().Info("Order notification rendered",
		zap.String("order_id", order.ID),
		zap.String("recipient", order.CustomerEmail),
		zap.String("body", buf.String()),
	)
	return nil
}
