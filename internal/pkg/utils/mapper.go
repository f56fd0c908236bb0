package utils

import (
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func BuildPatientModel(identityID primitive.ObjectID, request *requests.PatientProfile) *models.Patient {
	return &models.Patient{
		IdentityID:  identityID,
		Name:        request.Name,
		Age:         request.Age,
		Gender:      request.Gender,
		Phone:       request.Phone,
		Description: request.Description,
	}
}

// BuildDoctorModel defaults Status to Active.
func BuildDoctorModel(identityID primitive.ObjectID, request *requests.DoctorProfile) *models.Doctor {
	status := request.Status
	if status == "" {
		status = constvars.DoctorStatusActive
	}
	return &models.Doctor{
		IdentityID:     identityID,
		Name:           request.Name,
		Phone:          request.Phone,
		Gender:         request.Gender,
		Age:            request.Age,
		Specialization: request.Specialization,
		Status:         status,
	}
}

func BuildServiceModel(request *requests.Service) *models.Service {
	category := request.Category
	if category == "" {
		category = constvars.ServiceCategoryOther
	}
	duration := request.Duration
	if duration == "" {
		duration = constvars.ServiceDefaultDuration
	}
	return &models.Service{
		Name:        request.Name,
		Description: request.Description,
		Category:    category,
		Price:       request.Price,
		Duration:    duration,
	}
}

func BuildTransactionItems(items []requests.TransactionItem) []models.TransactionItem {
	result := make([]models.TransactionItem, 0, len(items))
	for _, item := range items {
		result = append(result, models.TransactionItem{
			Name:     item.Name,
			Price:    item.Price,
			Duration: item.Duration,
		})
	}
	return result
}

func BuildUserSummary(user *models.User) *responses.UserSummary {
	if user == nil {
		return nil
	}
	return &responses.UserSummary{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
	}
}
