package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	IdentityID  primitive.ObjectID `json:"patientID" bson:"patientID"`
	Name        string             `json:"name" bson:"name"`
	Age         int                `json:"age" bson:"age"`
	Gender      string             `json:"gender" bson:"gender"`
	Phone       string             `json:"phone" bson:"phone"`
	Description string             `json:"description" bson:"description"`
	TimeModel   `bson:",inline"`
}

func (p *Patient) ConvertToBsonM() bson.M {
	return bson.M{
		"name":        p.Name,
		"age":         p.Age,
		"gender":      p.Gender,
		"phone":       p.Phone,
		"description": p.Description,
		"updatedAt":   p.UpdatedAt,
	}
}
