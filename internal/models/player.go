package models

import "time"

// Player represents a person who takes part in game nights.
type Player struct {
	// ID is the unique identifier for the player (UUID format).
	ID string `json:"id"`

	// Name is the display name. It is the only field that may change after
	// creation.
	Name string `json:"name"`

	// CreatedAt is when the player was added.
	CreatedAt time.Time `json:"createdAt"`
}
