package model

import "time"

// User 用户模型
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Password     string    `json:"-"` // bcrypt哈希
	Phone        string    `json:"phone,omitempty"`
	JoinDate     time.Time `json:"joinDate"`
	IsVerified   bool      `json:"isVerified"`
	IsAdmin      bool      `json:"-"`
	ProfileImage string    `json:"profileImage,omitempty"`
}
