package contracts

import (
	"context"
	"hospital-service/internal/pkg/dto/requests"
)

type MailerService interface {
	Publish(ctx context.Context, job *requests.MailJob) error
}

// MailSender delivers a job over SMTP, fetching its attachment when set.
type MailSender interface {
	Send(ctx context.Context, job *requests.MailJob) error
}
