package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PatientID primitive.ObjectID `json:"patientID" bson:"patientID"`
	DoctorID  primitive.ObjectID `json:"doctorID" bson:"doctorID"`
	Date      time.Time          `json:"date" bson:"date"`
	TimeSlot  string             `json:"timeSlot" bson:"timeSlot"`
	Status    string             `json:"status" bson:"status"`
	Reason    string             `json:"reason" bson:"reason"`
	TimeModel `bson:",inline"`
}
