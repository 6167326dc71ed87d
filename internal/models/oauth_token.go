package models

import (
	"time"
)

// OAuthToken is an access token issued through the token endpoint
type OAuthToken struct {
	ID       uint   `gorm:"primaryKey"`
	ClientID string `gorm:"not null;index"`
	// Empty for clients without an owner
	UserID       *string
	AccessToken  string `gorm:"uniqueIndex;not null"`
	RefreshToken *string
	Scopes       string
	ExpiresAt    time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (OAuthToken) TableName() string {
	return "oauth_tokens"
}
