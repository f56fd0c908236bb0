package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"time"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error)
	AdminCreate(ctx context.Context, request *requests.AdminCreateAppointment) (*models.Appointment, error)
	List(ctx context.Context) ([]responses.Appointment, error)
	FindAll(ctx context.Context) ([]responses.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error)
	Cancel(ctx context.Context, appointmentID string) error
	QueueReminders(ctx context.Context, day time.Time) (queued int, err error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByPair(ctx context.Context, patientID, doctorID string) (*models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByStatusBetween(ctx context.Context, status string, from, to time.Time) ([]models.Appointment, error)
	// UpdateStatus only writes when the stored status still equals from.
	UpdateStatus(ctx context.Context, appointmentID, from, to string) (bool, error)
	DeleteByID(ctx context.Context, appointmentID string) (bool, error)
	EnsureIndexes(ctx context.Context) error
}
