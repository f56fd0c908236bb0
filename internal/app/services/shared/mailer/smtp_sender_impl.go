package mailer

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/drivers/mailer"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"io"

	"github.com/go-gomail/gomail"
	"go.uber.org/zap"
)

type smtpSender struct {
	Client     *mailer.SMTPClient
	Storage    contracts.StorageService
	BucketName string
	Log        *zap.Logger
}

func NewSMTPSender(client *mailer.SMTPClient, storage contracts.StorageService, bucketName string, logger *zap.Logger) contracts.MailSender {
	return &smtpSender{
		Client:     client,
		Storage:    storage,
		BucketName: bucketName,
		Log:        logger,
	}
}

func (s *smtpSender) Send(ctx context.Context, job *requests.MailJob) error {
	s.Log.Info("smtpSender.Send called",
		zap.String(constvars.LoggingJobKey, job.Type),
		zap.String(constvars.LoggingObjectKey, job.ObjectKey),
	)

	m := gomail.NewMessage()
	m.SetHeader("From", s.Client.EmailSender)
	m.SetHeader("To", job.To)
	m.SetHeader("Subject", job.Subject)
	m.SetBody("text/plain", job.Body)

	if job.ObjectKey != "" {
		attachment, err := s.Storage.GetObject(ctx, s.BucketName, job.ObjectKey)
		if err != nil {
			return err
		}
		m.Attach(job.AttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment)
			return err
		}))
	}

	if err := s.Client.Dialer.DialAndSend(m); err != nil {
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}

	s.Log.Info("smtpSender.Send succeeded",
		zap.String(constvars.LoggingJobKey, job.Type),
	)
	return nil
}
