package entities

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:20;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:50;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:120;not null" json:"-"`
	Role     string `gorm:"size:20;not null" json:"role"`

	Recipes []*Recipe `gorm:"foreignKey:UserID"`
	Timestamp
}

// PasswordResetToken holds at most one pending reset token per user.
type PasswordResetToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"token"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

func (t *PasswordResetToken) IsExpired() bool {
	return t.ExpiresAt.Before(time.Now())
}
