package models

import "time"

// Student is a registered student identity. It gates nothing in the catalog.
type Student struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name" example:"Asha Rao"`
	RollNo       string    `json:"rollNo" db:"roll_no" example:"21CS045"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
