package models

import (
	"hospital-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Doctor struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	IdentityID     primitive.ObjectID `json:"doctorID" bson:"doctorID"`
	Name           string             `json:"name" bson:"name"`
	Phone          string             `json:"phone" bson:"phone"`
	Gender         string             `json:"gender" bson:"gender"`
	Age            int                `json:"age" bson:"age"`
	Specialization string             `json:"specialization" bson:"specialization"`
	Status         string             `json:"status" bson:"status"`
	TimeModel      `bson:",inline"`
}

func (d *Doctor) IsActive() bool {
	return d.Status == constvars.DoctorStatusActive
}

func (d *Doctor) ConvertToBsonM() bson.M {
	return bson.M{
		"name":           d.Name,
		"phone":          d.Phone,
		"gender":         d.Gender,
		"age":            d.Age,
		"specialization": d.Specialization,
		"status":         d.Status,
		"updatedAt":      d.UpdatedAt,
	}
}
