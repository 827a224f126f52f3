package domain

import "time"

// Bundle is a named sponsorship tier (Brons/Zilver/Goud/Platina).
// Assignments reference bundles by name, not by id: renaming or deleting a
// bundle leaves historical assignment records untouched.
type Bundle struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

type BundleUpdate struct {
	Name        *string
	Description *string
	Price       *float64
}
