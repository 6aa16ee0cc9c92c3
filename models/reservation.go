package models

import "time"

// Reservation holds one table for one time slot. The composite unique
// index on (time_slot, table_number) is the only guard against two
// concurrent bookings of the same table; see services.ReservationService.
type Reservation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"not null;index" json:"customer_id"`
	Customer    Customer  `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	TimeSlot    time.Time `gorm:"not null;uniqueIndex:uniq_table_slot" json:"time_slot"`
	PartySize   int       `gorm:"not null" json:"party_size"`
	TableNumber int       `gorm:"not null;uniqueIndex:uniq_table_slot" json:"table_number"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
