package models

import "time"

// AnonymousName is the name given to customers created without identification.
const AnonymousName = "Anonymous"

// Customer optional columns are pointers so absent values are stored as NULL
// and do not collide under the unique indexes.
type Customer struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Name           *string `gorm:"size:100;index" json:"name"`
	Email          *string `gorm:"size:100;uniqueIndex" json:"email"`
	CPF            *string `gorm:"column:cpf;size:14;uniqueIndex" json:"cpf"`
	HashedPassword *string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAnonymous reports whether the customer carries no identifying data.
func (c *Customer) IsAnonymous() bool {
	return c.Email == nil && c.CPF == nil && c.HashedPassword == nil
}
