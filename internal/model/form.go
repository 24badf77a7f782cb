// internal/model/form.go
package model

import "time"

type Form struct {
    ID          int       `db:"id" json:"id"`
    Name        string    `db:"name" json:"name"`
    Slug        string    `db:"slug" json:"slug"` // uuid, public URL component
    Description string    `db:"description" json:"description"`
    Active      bool      `db:"active" json:"active"`
    CreatedAt   time.Time `db:"created_at" json:"created_at"`
    UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
