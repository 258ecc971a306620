package models

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is the single shared credential. It is seeded once and never mutated.
type User struct {
	Username     string    `gorm:"primaryKey;size:255" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"passwordHash"`
	Token        string    `gorm:"size:255;not null" json:"token"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// NewUser hashes the plain password for storage
func NewUser(username, password, token string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	return User{
		Username:     username,
		PasswordHash: string(hash),
		Token:        token,
	}, nil
}

// CheckPassword compares a plain password against the stored hash
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// All returns every persisted model, for migrations
func All() []interface{} {
	return []interface{}{
		&Guard{},
		&Inspection{},
		&Exercise{},
		&User{},
	}
}
