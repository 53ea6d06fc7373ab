// File path: internal/model/user.go
package model

import "time"

// User is an authenticated account. The password hash never leaves the
// store layer; this struct is the wire shape.
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
