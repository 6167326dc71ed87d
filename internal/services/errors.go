package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Errors returned when a referenced record does not exist
var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrPizzaNotFound      = errors.New("pizza not found")
	ErrClientNotFound     = errors.New("client_not_found")
	ErrUserAlreadyExists  = errors.New("user_already_exists")
)

// notFoundAs replaces gorm.ErrRecordNotFound by the given sentinel and wraps anything else
func notFoundAs(err error, sentinel error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("%s: %w", action, err)
}
