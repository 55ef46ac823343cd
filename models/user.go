package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is a registered account that owns zero or more entries.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(128)" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	Entries      []Entry   `gorm:"foreignKey:UserID" json:"-"`
}

// SetPassword hashes the plaintext and stores it in PasswordHash.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ToRecord returns the user as a flat response record. The password hash
// never appears in responses.
func (u *User) ToRecord() map[string]interface{} {
	return map[string]interface{}{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"created_at": u.CreatedAt.Format(time.RFC3339),
	}
}
