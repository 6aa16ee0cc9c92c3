package services

import (
	"encoding/json"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/cafefausse/cafe-fausse/models"
	"github.com/cafefausse/cafe-fausse/utils"
)

// DefaultTotalTables is the seatable table count used when a request
// carries no explicit capacity.
const DefaultTotalTables = 30

// ReservationService admits reservation requests: it validates the
// request, picks a free table for the slot and persists the
// reservation together with an idempotent customer record.
type ReservationService struct {
	store ReservationStore
}

func NewReservationService(store ReservationStore) *ReservationService {
	return &ReservationService{store: store}
}

// AdmissionInput is one reservation request. Guests may arrive as a
// JSON number or a numeric string. TotalTables is the configured
// capacity; zero or negative falls back to DefaultTotalTables.
type AdmissionInput struct {
	TimeSlot    string
	Guests      interface{}
	Name        string
	Email       string
	Phone       string
	TotalTables int
}

type AdmissionResult struct {
	ReservationID uint      `json:"reservation_id"`
	TableNumber   int       `json:"table_number"`
	TimeSlot      time.Time `json:"time_slot"`
}

// CreateReservation validates the input (time slot, then name, then
// email, then party size — the first failing field is the one
// reported), assigns a random free table for the slot and writes the
// reservation and its customer as one transaction.
//
// The availability read and the insert are not atomic: two concurrent
// requests for the same slot can pick the same table. The composite
// unique index on (time_slot, table_number) arbitrates; the losing
// writer rolls back fully and gets a persistence error. No retry is
// attempted.
func (s *ReservationService) CreateReservation(in AdmissionInput) (*AdmissionResult, error) {
	slot, ok := parseTimeSlot(in.TimeSlot)
	if !ok {
		return nil, errInvalidInput("Invalid or missing time slot.")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errInvalidInput("Guest name is required.")
	}

	// Email format is deliberately not checked here; only the
	// newsletter signup validates format.
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, errInvalidInput("Email address is required.")
	}

	partySize, ok := parsePartySize(in.Guests)
	if !ok {
		return nil, errInvalidInput("Number of guests must be numeric.")
	}

	totalTables := in.TotalTables
	if totalTables <= 0 {
		totalTables = DefaultTotalTables
	}

	booked, err := s.store.FindReservationsByTimeSlot(slot)
	if err != nil {
		utils.ErrorLogger.Printf("reservation availability read failed: %v", err)
		return nil, errPersistence("Unable to process reservation at this time.")
	}

	occupied := make(map[int]bool, len(booked))
	for _, r := range booked {
		occupied[r.TableNumber] = true
	}

	available := make([]int, 0, totalTables)
	for table := 1; table <= totalTables; table++ {
		if !occupied[table] {
			available = append(available, table)
		}
	}

	if len(available) == 0 {
		return nil, errConflict("Selected time slot is fully booked, please pick another time slot!")
	}

	// Uniform pick, so low-numbered tables do not fill first.
	tableNumber := available[rand.Intn(len(available))]

	phone := strings.TrimSpace(in.Phone)

	var reservation models.Reservation
	err = s.store.Transaction(func(tx ReservationStore) error {
		customer, err := tx.FindCustomerByEmail(email)
		if err != nil {
			return err
		}

		if customer == nil {
			customer = &models.Customer{Name: name, Email: email}
		} else {
			customer.Name = name
		}
		// Never overwrite a stored phone with an empty value.
		if phone != "" {
			customer.Phone = &phone
		}

		if err := tx.UpsertCustomer(customer); err != nil {
			return err
		}

		reservation = models.Reservation{
			CustomerID:  customer.ID,
			TimeSlot:    slot,
			PartySize:   partySize,
			TableNumber: tableNumber,
		}
		return tx.InsertReservation(&reservation)
	})
	if err != nil {
		// Constraint violations are not distinguished from other
		// database failures; everything collapses to one outcome.
		utils.ErrorLogger.Printf("reservation transaction failed: %v", err)
		return nil, errPersistence("Unable to process reservation at this time.")
	}

	utils.InfoLogger.Printf("Reservation %d confirmed: table %d at %s for %s",
		reservation.ID, tableNumber, slot.Format(time.RFC3339), email)

	return &AdmissionResult{
		ReservationID: reservation.ID,
		TableNumber:   tableNumber,
		TimeSlot:      slot,
	}, nil
}

var timeSlotLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// parseTimeSlot accepts RFC 3339 plus the common offset-less ISO
// forms; offset-less values are taken as UTC.
func parseTimeSlot(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timeSlotLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// parsePartySize coerces the guests field to an integer. Fractional
// JSON numbers truncate. No bounds are enforced on party size.
func parsePartySize(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int(f), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
