// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"accounts/internal/domain/entity"
)

// AddressPayload is the address shape used on both requests and responses.
type AddressPayload struct {
	Street  string `json:"street"`
	Number  string `json:"number"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

func (a AddressPayload) toEntity() entity.Address {
	return entity.Address{
		Street:  a.Street,
		Number:  a.Number,
		City:    a.City,
		ZipCode: a.ZipCode,
	}
}

func addressPayloadFrom(address entity.Address) AddressPayload {
	return AddressPayload{
		Street:  address.Street,
		Number:  address.Number,
		City:    address.City,
		ZipCode: address.ZipCode,
	}
}

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	Name     string         `json:"name" validate:"required"`
	Email    string         `json:"email" validate:"required,email"`
	Login    string         `json:"login" validate:"required"`
	Password string         `json:"password" validate:"required,min=6"`
	Type     string         `json:"type" validate:"omitempty,oneof=CUSTOMER ADMIN"`
	Address  AddressPayload `json:"address"`
}

// UpdateUserRequest carries the mutable profile fields.
type UpdateUserRequest struct {
	Name    string         `json:"name" validate:"required"`
	Address AddressPayload `json:"address"`
}

// ChangePasswordRequest carries a password rotation.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// LoginRequest is shared by both login surfaces.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is the bearer-token login result.
type TokenResponse struct {
	Token string `json:"token"`
	Type  string `json:"type"`
}

// UserResponse is the public view of a user. It never carries the
// password hash.
type UserResponse struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Login       string         `json:"login"`
	Type        string         `json:"type"`
	Address     AddressPayload `json:"address"`
	CreatedAt   time.Time      `json:"createdAt"`
	LastUpdated time.Time      `json:"lastUpdated"`
}

func userResponseFrom(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Login:       user.Login,
		Type:        user.Type.String(),
		Address:     addressPayloadFrom(user.Address),
		CreatedAt:   user.CreatedAt,
		LastUpdated: user.LastUpdated,
	}
}

func userResponsesFrom(users []*entity.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, userResponseFrom(user))
	}

	return responses
}
