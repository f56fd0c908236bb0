package utils

import (
	"hospital-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	request := &requests.RegisterUser{
		Username: "  alice  ",
		Email:    "  A@X.COM ",
	}

	SanitizeRegisterUserRequest(request)

	assert.Equal(t, "alice", request.Username, "username should be trimmed")
	assert.Equal(t, "a@x.com", request.Email, "email should be lowercase and trimmed")
}

func TestSanitizePatientProfileRequest(t *testing.T) {
	request := &requests.PatientProfile{
		Name:        " Alice ",
		Gender:      "fEMALE",
		Phone:       " 9876543210 ",
		Description: " checkup  ",
	}

	SanitizePatientProfileRequest(request)

	assert.Equal(t, "Alice", request.Name)
	assert.Equal(t, "Female", request.Gender, "gender should be capitalized")
	assert.Equal(t, "9876543210", request.Phone)
	assert.Equal(t, "checkup", request.Description)
}

func TestSanitizeChangeRoleRequest(t *testing.T) {
	t.Run("Role Lowercased", func(t *testing.T) {
		request := &requests.ChangeRole{Role: " Doctor "}

		SanitizeChangeRoleRequest(request)

		assert.Equal(t, "doctor", request.Role)
	})

	t.Run("Nested Profile Sanitized", func(t *testing.T) {
		request := &requests.ChangeRole{
			Role:   "doctor",
			Doctor: &requests.DoctorProfile{Name: " Bob ", Status: "away", Gender: "male"},
		}

		SanitizeChangeRoleRequest(request)

		assert.Equal(t, "Bob", request.Doctor.Name)
		assert.Equal(t, "Away", request.Doctor.Status)
		assert.Equal(t, "Male", request.Doctor.Gender)
	})
}

func TestSanitizeSaveTransactionRequest(t *testing.T) {
	request := &requests.SaveTransaction{
		OrderID:  " order_1 ",
		Currency: "inr",
		Status:   "SUCCESS",
		Items:    []requests.TransactionItem{{Name: "  X-Ray ", Duration: " 30 minutes "}},
	}

	SanitizeSaveTransactionRequest(request)

	assert.Equal(t, "order_1", request.OrderID)
	assert.Equal(t, "INR", request.Currency)
	assert.Equal(t, "success", request.Status)
	assert.Equal(t, "X-Ray", request.Items[0].Name)
	assert.Equal(t, "30 minutes", request.Items[0].Duration)
}

func TestSanitizePredictRequest(t *testing.T) {
	request := &requests.Predict{Symptoms: []string{" itching ", "skin_rash  "}}

	SanitizePredictRequest(request)

	assert.Equal(t, []string{"itching", "skin_rash"}, request.Symptoms)
}

func TestSanitizeCreateAppointmentRequest(t *testing.T) {
	request := &requests.AdminCreateAppointment{
		PatientID: " 65f000000000000000000001 ",
		CreateAppointment: requests.CreateAppointment{
			DoctorID: " 65f000000000000000000002",
			TimeSlot: "morning",
			Reason:   " fever ",
		},
	}

	SanitizeAdminCreateAppointmentRequest(request)

	assert.Equal(t, "65f000000000000000000001", request.PatientID)
	assert.Equal(t, "65f000000000000000000002", request.DoctorID)
	assert.Equal(t, "Morning", request.TimeSlot)
	assert.Equal(t, "fever", request.Reason)
}
