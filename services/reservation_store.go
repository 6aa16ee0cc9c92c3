package services

import (
	"errors"
	"time"

	"github.com/cafefausse/cafe-fausse/models"
	"gorm.io/gorm"
)

// ReservationStore is the persistence boundary of the admission
// service. Transaction runs fn against a store scoped to a single
// database transaction: every write inside commits or rolls back as
// one unit.
type ReservationStore interface {
	// FindCustomerByEmail returns nil without error when no customer
	// exists for the email.
	FindCustomerByEmail(email string) (*models.Customer, error)
	UpsertCustomer(customer *models.Customer) error
	FindReservationsByTimeSlot(slot time.Time) ([]models.Reservation, error)
	InsertReservation(reservation *models.Reservation) error
	Transaction(fn func(tx ReservationStore) error) error
}

type GormReservationStore struct {
	DB *gorm.DB
}

func NewGormReservationStore(db *gorm.DB) *GormReservationStore {
	return &GormReservationStore{DB: db}
}

func (s *GormReservationStore) FindCustomerByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	err := s.DB.Where("email = ?", email).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *GormReservationStore) UpsertCustomer(customer *models.Customer) error {
	return s.DB.Save(customer).Error
}

func (s *GormReservationStore) FindReservationsByTimeSlot(slot time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.DB.Where("time_slot = ?", slot).Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *GormReservationStore) InsertReservation(reservation *models.Reservation) error {
	return s.DB.Create(reservation).Error
}

func (s *GormReservationStore) Transaction(fn func(tx ReservationStore) error) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return fn(&GormReservationStore{DB: tx})
	})
}
