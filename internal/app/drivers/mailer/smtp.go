package mailer

import (
	"hospital-service/internal/app/config"

	"github.com/go-gomail/gomail"
)

type SMTPClient struct {
	Host        string
	Port        int
	EmailSender string
	Dialer      *gomail.Dialer
}

func NewSMTPClient(driverConfig *config.DriverConfig) *SMTPClient {
	dialer := gomail.NewDialer(
		driverConfig.SMTP.Host,
		driverConfig.SMTP.Port,
		driverConfig.SMTP.Username,
		driverConfig.SMTP.Password,
	)
	return &SMTPClient{
		Host:        driverConfig.SMTP.Host,
		Port:        driverConfig.SMTP.Port,
		EmailSender: driverConfig.SMTP.EmailSender,
		Dialer:      dialer,
	}
}
