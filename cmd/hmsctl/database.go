package main

import (
	"context"
	"hospital-service/internal/app/drivers/database"
	"hospital-service/internal/app/services/core/appointments"
	"hospital-service/internal/app/services/core/auth"
	"hospital-service/internal/app/services/core/catalog"
	"hospital-service/internal/app/services/core/doctors"
	"hospital-service/internal/app/services/core/patients"
	"hospital-service/internal/app/services/core/transactions"
	"hospital-service/internal/app/services/core/users"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type indexedRepository struct {
	name       string
	repository interface{ EnsureIndexes(context.Context) error }
}

func (a *app) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the MongoDB indexes every collection relies on",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := database.NewMongoDB(a.driverConfig)
			defer client.Disconnect(context.Background())

			dbName := a.driverConfig.MongoDB.DbName
			repositories := []indexedRepository{
				{"users", users.NewUserMongoRepository(client, dbName)},
				{"patients", patients.NewPatientMongoRepository(client, dbName)},
				{"doctors", doctors.NewDoctorMongoRepository(client, dbName)},
				{"services", catalog.NewServiceMongoRepository(client, dbName)},
				{"appointments", appointments.NewAppointmentMongoRepository(client, dbName)},
				{"transactions", transactions.NewTransactionMongoRepository(client, dbName)},
			}

			ctx, cancel := context.WithTimeout(commandContext(cmd.Context()), time.Minute)
			defer cancel()
			requestID := utils.GetRequestID(ctx)

			for _, r := range repositories {
				err := utils.LogOperation(a.zapLog, "ensure_indexes_"+r.name, requestID, func() error {
					return r.repository.EnsureIndexes(ctx)
				})
				if err != nil {
					a.log.WithError(err).WithField("collection", r.name).Error("Failed to ensure indexes")
					return err
				}
				a.log.WithField("collection", r.name).Info("Indexes ensured")
			}
			return nil
		},
	}
}

func (a *app) createAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				password = os.Getenv("HMS_ADMIN_PASSWORD")
			}

			client := database.NewMongoDB(a.driverConfig)
			defer client.Disconnect(context.Background())

			userRepository := users.NewUserMongoRepository(client, a.driverConfig.MongoDB.DbName)
			authUsecase := auth.NewAuthUsecase(userRepository, a.internalConfig, a.zapLog)

			ctx, cancel := context.WithTimeout(commandContext(cmd.Context()), 30*time.Second)
			defer cancel()

			request := &requests.CreateAdmin{
				Name:     name,
				Email:    email,
				Password: password,
			}
			utils.SanitizeCreateAdminRequest(request)
			if err := utils.ValidateStruct(request); err != nil {
				return exceptions.ErrInputValidation(err)
			}

			user, err := authUsecase.CreateAdmin(ctx, request)
			if err != nil {
				return err
			}

			a.log.WithFields(logrus.Fields{
				"identity_id": user.ID.Hex(),
				"email":       user.Email,
			}).Info("Admin created")
			return nil
		},
	}
	cmd.Flags().String("name", "", "Admin display name")
	cmd.Flags().String("email", "", "Admin e-mail used to log in")
	cmd.Flags().String("password", "", "Admin password (falls back to HMS_ADMIN_PASSWORD)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	return cmd
}

func (a *app) seedServicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed-services",
		Short: "Insert catalog services that do not exist yet",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			services := defaultServices
			if file != "" {
				content, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				services = nil
				if err := json.Unmarshal(content, &services); err != nil {
					return err
				}
			}

			client := database.NewMongoDB(a.driverConfig)
			defer client.Disconnect(context.Background())

			serviceRepository := catalog.NewServiceMongoRepository(client, a.driverConfig.MongoDB.DbName)
			serviceUsecase := catalog.NewServiceUsecase(serviceRepository, a.zapLog)

			ctx, cancel := context.WithTimeout(commandContext(cmd.Context()), time.Minute)
			defer cancel()

			created, err := serviceUsecase.Seed(ctx, services)
			if err != nil {
				return err
			}

			a.log.WithFields(logrus.Fields{
				"created": created,
				"skipped": len(services) - created,
			}).Info("Services seeded")
			return nil
		},
	}
	cmd.Flags().String("file", "", "JSON array of services; the built-in catalog is used when empty")
	return cmd
}

var defaultServices = []requests.Service{
	{Name: "General Consultation", Description: "Outpatient consultation with a general physician", Category: "consultation", Price: 500, Duration: "30 minutes"},
	{Name: "Complete Blood Count", Description: "Blood panel covering red cells, white cells and platelets", Category: "diagnostic", Price: 350, Duration: "15 minutes"},
	{Name: "Chest X-Ray", Description: "Single view radiograph of the chest", Category: "diagnostic", Price: 800, Duration: "20 minutes"},
	{Name: "Physiotherapy Session", Description: "Guided physiotherapy for musculoskeletal recovery", Category: "therapy", Price: 700, Duration: "45 minutes"},
	{Name: "Minor Surgical Procedure", Description: "Day-care minor procedure under local anaesthesia", Category: "surgery", Price: 5000, Duration: "2 hours"},
}
