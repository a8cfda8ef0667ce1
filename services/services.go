package services

import (
	"go.uber.org/zap"

	"github.com/Anderson413366/anderson-cleaning-sub001/clients/resend"
	"github.com/Anderson413366/anderson-cleaning-sub001/observe"
	"github.com/Anderson413366/anderson-cleaning-sub001/ratelimit"
	"github.com/Anderson413366/anderson-cleaning-sub001/repositories"
)

// Services holds all service instances
type Services struct {
	Engine   *PipelineEngine
	Notifier NotifierService
	Admin    AdminService
}

// NewServices creates and initializes all service instances
func NewServices(
	repos *repositories.Repositories,
	emailClient resend.Client,
	emailFrom, notificationEmail string,
	limits ratelimit.Store,
	sink observe.Sink,
	logger *zap.Logger,
) *Services {
	return &Services{
		Engine:   NewPipelineEngine(limits, sink, logger),
		Notifier: NewNotifierService(emailClient, emailFrom, notificationEmail, logger),
		Admin:    NewAdminService(repos),
	}
}
