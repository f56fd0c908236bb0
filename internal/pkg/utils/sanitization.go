package utils

import (
	"hospital-service/internal/pkg/dto/requests"
	"strings"
	"unicode"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func capitalize(input string) string {
	if len(input) == 0 {
		return input
	}
	runes := []rune(input)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = normalizeEmail(input.Email)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = normalizeEmail(input.Email)
}

func SanitizeCreateAdminRequest(input *requests.CreateAdmin) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
}

func SanitizeUpdateUserRequest(input *requests.UpdateUser) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
}

func SanitizeChangeRoleRequest(input *requests.ChangeRole) {
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	if input.Patient != nil {
		SanitizePatientProfileRequest(input.Patient)
	}
	if input.Doctor != nil {
		SanitizeDoctorProfileRequest(input.Doctor)
	}
}

func SanitizePatientProfileRequest(input *requests.PatientProfile) {
	input.Name = strings.TrimSpace(input.Name)
	input.Gender = capitalize(strings.TrimSpace(input.Gender))
	input.Phone = strings.TrimSpace(input.Phone)
	input.Description = strings.TrimSpace(input.Description)
}

func SanitizeDoctorProfileRequest(input *requests.DoctorProfile) {
	input.Name = strings.TrimSpace(input.Name)
	input.Gender = capitalize(strings.TrimSpace(input.Gender))
	input.Phone = strings.TrimSpace(input.Phone)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Status = capitalize(strings.TrimSpace(input.Status))
}

func SanitizeServiceRequest(input *requests.Service) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Category = strings.ToLower(strings.TrimSpace(input.Category))
	input.Duration = strings.TrimSpace(input.Duration)
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Date = strings.TrimSpace(input.Date)
	input.TimeSlot = capitalize(strings.TrimSpace(input.TimeSlot))
	input.Reason = strings.TrimSpace(input.Reason)
}

func SanitizeAdminCreateAppointmentRequest(input *requests.AdminCreateAppointment) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	SanitizeCreateAppointmentRequest(&input.CreateAppointment)
}

func SanitizeUpdateAppointmentStatusRequest(input *requests.UpdateAppointmentStatus) {
	input.Status = capitalize(strings.TrimSpace(input.Status))
}

func SanitizeSaveTransactionRequest(input *requests.SaveTransaction) {
	input.OrderID = strings.TrimSpace(input.OrderID)
	input.PaymentID = strings.TrimSpace(input.PaymentID)
	input.Signature = strings.TrimSpace(input.Signature)
	input.Currency = strings.ToUpper(strings.TrimSpace(input.Currency))
	input.Receipt = strings.TrimSpace(input.Receipt)
	input.Status = strings.ToLower(strings.TrimSpace(input.Status))
	for i := range input.Items {
		input.Items[i].Name = strings.TrimSpace(input.Items[i].Name)
		input.Items[i].Duration = strings.TrimSpace(input.Items[i].Duration)
	}
}

func SanitizePredictRequest(input *requests.Predict) {
	input.Symptoms = cleanWhiteSpaceFromEachStringOfAnArray(input.Symptoms)
}
