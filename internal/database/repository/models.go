package repository

import "time"

// Person represents a persons row with its emergency contacts.
type Person struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Phone             string             `json:"phone,omitempty"`
	Email             string             `json:"email,omitempty"`
	Address           string             `json:"address,omitempty"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts,omitempty"`
	CreatedAt         time.Time          `json:"-"`
	UpdatedAt         time.Time          `json:"-"`
}

// EmergencyContact represents an emergency_contacts row.
type EmergencyContact struct {
	ID           string `json:"id"`
	PersonID     string `json:"-"`
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	// Position orders contacts within a person; it is reassigned on every save.
	Position int `json:"-"`
}
