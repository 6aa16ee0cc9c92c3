package controllers

import (
	"net/http"

	"github.com/cafefausse/cafe-fausse/models"
	"github.com/cafefausse/cafe-fausse/services"
	"github.com/cafefausse/cafe-fausse/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReservationController struct {
	DB          *gorm.DB
	TotalTables int
	service     *services.ReservationService
}

func NewReservationController(db *gorm.DB, totalTables int) *ReservationController {
	return &ReservationController{
		DB:          db,
		TotalTables: totalTables,
		service:     services.NewReservationService(services.NewGormReservationStore(db)),
	}
}

// CreateReservation -> POST /api/reservations
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		Datetime string      `json:"datetime"`
		Name     string      `json:"name"`
		Email    string      `json:"email"`
		Phone    string      `json:"phone"`
		Guests   interface{} `json:"guests"`
	}
	// A missing or malformed body falls through to field validation,
	// which reports the first bad field.
	_ = c.ShouldBindJSON(&req)

	result, err := rc.service.CreateReservation(services.AdmissionInput{
		TimeSlot:    req.Datetime,
		Guests:      req.Guests,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		TotalTables: rc.TotalTables,
	})
	if err != nil {
		switch services.KindOf(err) {
		case services.KindInvalidInput:
			utils.RespondError(c, http.StatusBadRequest, err)
		case services.KindConflict:
			utils.RespondError(c, http.StatusConflict, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Reservation confirmed.", result)
}

// ListReservations -> admin listing, newest slot first
func (rc *ReservationController) ListReservations(c *gin.Context) {
	var reservations []models.Reservation
	if err := rc.DB.Preload("Customer").Order("time_slot DESC").Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}
