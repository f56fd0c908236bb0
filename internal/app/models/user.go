package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	TimeModel `bson:",inline"`
}

func (u *User) ConvertToBsonM() bson.M {
	update := bson.M{"updatedAt": u.UpdatedAt}
	if u.Name != "" {
		update["name"] = u.Name
	}
	if u.Email != "" {
		update["email"] = u.Email
	}
	if u.Role != "" {
		update["role"] = u.Role
	}
	return update
}
