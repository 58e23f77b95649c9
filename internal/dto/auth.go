package dto

import "time"

type RegisterRequestDTO struct {
	Email string `json:"email" validate:"required,email" example:"ama@example.com"`
	Pin   string `json:"pin" validate:"required,numeric,min=4,max=12" example:"1234"`
}

type RegisterResponseDTO struct {
	Message string          `json:"message"`
	User    UserResponseDTO `json:"user"`
}

type LoginRequestDTO struct {
	Email string `json:"email" validate:"required,email" example:"ama@example.com"`
	Pin   string `json:"pin" validate:"required,numeric,min=4,max=12" example:"1234"`
}

type LoginResponseDTO struct {
	Message string          `json:"message"`
	User    UserResponseDTO `json:"user"`
}

type UserResponseDTO struct {
	ID        string    `json:"id" example:"6f1c4a52-1b43-4d8e-9a55-7c1f0b7c9e10"`
	Email     string    `json:"email" example:"ama@example.com"`
	CreatedAt time.Time `json:"createdAt" example:"2025-08-24T12:50:34Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2025-08-24T12:50:34Z"`
}
