package leads

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/strawfields/strawfields-backend/pkg/logger"
	"github.com/strawfields/strawfields-backend/pkg/metrics"
)

const metricFlow = "lead_submission"

// Service accepts lead submissions and guarantees they reach somebody:
// the CRM webhook first, the local CSV backup if the webhook is down.
type Service interface {
	Submit(ctx context.Context, lead Lead) (SubmitResult, error)
}

type service struct {
	forwarder      Forwarder
	backup         Backup
	whatsappNumber string
	metrics        *metrics.LeadMetrics
	logg           *logger.Logger
	now            func() time.Time
}

// NewService wires the delivery chain. Backup may be nil, in which case
// a webhook failure is terminal.
func NewService(forwarder Forwarder, backup Backup, whatsappNumber string, m *metrics.LeadMetrics, logg *logger.Logger) (Service, error) {
	if forwarder == nil {
		return nil, fmt.Errorf("forwarder required")
	}
	return &service{
		forwarder:      forwarder,
		backup:         backup,
		whatsappNumber: whatsappNumber,
		metrics:        m,
		logg:           logg,
		now:            time.Now,
	}, nil
}

// Submit forwards the lead and reports which path landed it. The
// WhatsApp link is filled in on every outcome, including total failure,
// so the visitor always has a way to reach sales.
func (s *service) Submit(ctx context.Context, lead Lead) (SubmitResult, error) {
	result := SubmitResult{WhatsAppURL: WhatsAppURL(s.whatsappNumber, lead)}

	start := s.now()
	webhookErr := s.forwarder.Forward(ctx, lead)
	s.metrics.ObserveDuration(metricFlow, s.now().Sub(start))

	if webhookErr == nil {
		s.metrics.IncSuccess(metricFlow)
		result.Status = StatusSuccess
		return result, nil
	}

	s.metrics.IncFailure(metricFlow)
	if s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", webhookErr.Error()), "leads.webhook_forward_failed")
	}

	if s.backup == nil {
		result.Status = StatusError
		return result, webhookErr
	}

	if csvErr := s.backup.Store(lead); csvErr != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "leads.csv_backup_failed", csvErr)
		}
		result.Status = StatusError
		return result, multierr.Combine(webhookErr, csvErr)
	}

	s.metrics.IncCSVFallback(metricFlow)
	result.Status = StatusWebhookErrorCSVBackup
	return result, nil
}
