package contracts

import (
	"context"
	"hospital-service/internal/app/models"
)

// RoleTransitionInput moves an identity to Role. For patient and doctor the
// matching profile is upserted and the other one removed. For user and admin
// both profiles are removed.
type RoleTransitionInput struct {
	IdentityID string
	Role       string
	Patient    *models.Patient
	Doctor     *models.Doctor
}

type RoleTransitionResult struct {
	User    *models.User    `json:"user"`
	Patient *models.Patient `json:"patient,omitempty"`
	Doctor  *models.Doctor  `json:"doctor,omitempty"`
}

type RoleUsecase interface {
	Transition(ctx context.Context, input *RoleTransitionInput) (*RoleTransitionResult, error)
	// RemoveIdentity deletes the identity together with its profiles.
	RemoveIdentity(ctx context.Context, identityID string) error
}
