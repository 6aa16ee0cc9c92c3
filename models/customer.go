package models

import "time"

// Customer is the root guest record, keyed by a unique lowercase
// email address. A customer is created on their first reservation or
// newsletter signup and updated in place on later submissions.
// Deleting a customer cascades to their reservations.
type Customer struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"type:varchar(150)" json:"name"`
	Email           string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone           *string `gorm:"type:varchar(40)" json:"phone"`
	NewsletterOptIn bool    `gorm:"not null;default:false" json:"newsletter_opt_in"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	Reservations []Reservation `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"reservations,omitempty"`
}
