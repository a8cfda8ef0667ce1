package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Anderson413366/anderson-cleaning-sub001/clients/resend"
)

// NotifierService dispatches rendered lead notifications to the configured
// recipient. Every send attempt is logged with its outcome.
type NotifierService interface {
	Send(ctx context.Context, notification Notification) error
}

// notifierService implements NotifierService
type notifierService struct {
	client resend.Client
	from   string
	to     string
	logger *zap.Logger
}

// NewNotifierService creates a new notifier service
func NewNotifierService(client resend.Client, from, to string, logger *zap.Logger) NotifierService {
	return &notifierService{
		client: client,
		from:   from,
		to:     to,
		logger: logger,
	}
}

// Send dispatches one notification email
func (s *notifierService) Send(ctx context.Context, notification Notification) error {
	s.logger.Info("sending lead notification",
		zap.String("to", s.to),
		zap.String("subject", notification.Subject),
		zap.String("reply_to", notification.ReplyTo),
	)
	s.logger.Debug("rendered notification content",
		zap.String("html", notification.HTML),
		zap.String("text", notification.Text),
	)

	id, err := s.client.Send(ctx, resend.Email{
		From:    s.from,
		To:      s.to,
		Subject: notification.Subject,
		HTML:    notification.HTML,
		Text:    notification.Text,
		ReplyTo: notification.ReplyTo,
	})
	if err != nil {
		s.logger.Error("lead notification failed",
			zap.String("subject", notification.Subject),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send notification: %w", err)
	}

	s.logger.Info("lead notification sent",
		zap.String("subject", notification.Subject),
		zap.String("message_id", id),
	)
	return nil
}
