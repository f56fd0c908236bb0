package main

import (
	"context"
	"hospital-service/internal/app/drivers/mailer"
	"hospital-service/internal/app/drivers/messaging"
	"hospital-service/internal/app/drivers/storage"
	mailerService "hospital-service/internal/app/services/shared/mailer"
	minioStorage "hospital-service/internal/app/services/shared/storage"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func (a *app) mailerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mailer",
		Short: "Consume mail jobs from RabbitMQ and deliver them over SMTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefetch, _ := cmd.Flags().GetInt("prefetch")

			rabbitMQ := messaging.NewRabbitMQ(a.driverConfig)
			defer rabbitMQ.Close()

			storageService := minioStorage.NewMinioStorage(storage.NewMinio(a.driverConfig))
			sender := mailerService.NewSMTPSender(
				mailer.NewSMTPClient(a.driverConfig),
				storageService,
				a.driverConfig.Minio.BucketName,
				a.zapLog,
			)

			consumer, err := mailerService.NewConsumer(rabbitMQ, a.internalConfig.RabbitMQ.MailerQueue, prefetch, sender, a.zapLog)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.log.WithField("queue", a.internalConfig.RabbitMQ.MailerQueue).Info("Mailer consumer started")
			err = consumer.Run(ctx)
			a.log.Info("Mailer consumer stopped")
			return err
		},
	}
	cmd.Flags().Int("prefetch", 5, "Unacknowledged deliveries held at once")
	return cmd
}
