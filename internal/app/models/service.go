package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category" bson:"category"`
	Price       float64            `json:"price" bson:"price"`
	Duration    string             `json:"duration" bson:"duration"`
	TimeModel   `bson:",inline"`
}

func (s *Service) ConvertToBsonM() bson.M {
	return bson.M{
		"name":        s.Name,
		"description": s.Description,
		"category":    s.Category,
		"price":       s.Price,
		"duration":    s.Duration,
		"updatedAt":   s.UpdatedAt,
	}
}
