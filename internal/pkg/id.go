package pkg

import "github.com/google/uuid"

// GenerateMatchID returns a fresh identifier for a started game.
func GenerateMatchID() string {
	return uuid.NewString()
}
