package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cafefausse/cafe-fausse/models"
	"github.com/cafefausse/cafe-fausse/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB       *gorm.DB
	Username string
	Password string
}

func NewAdminController(db *gorm.DB, username, password string) *AdminController {
	return &AdminController{DB: db, Username: username, Password: password}
}

// Login -> POST /api/admin
// Hardcoded-credential stub, not a real account system. Credentials
// come from config (default admin/admin); a signed token is issued so
// the protected admin group can be used.
func (ac *AdminController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	_ = c.ShouldBindJSON(&req)

	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)

	if username == "" || password == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Username and password are required."))
		return
	}

	if username != ac.Username || password != ac.Password {
		utils.InfoLogger.Printf("Failed admin login attempt for %q", username)
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid credentials."))
		return
	}

	token, err := utils.GenerateToken(0, "admin")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful.", gin.H{
		"token": token,
	})
}

// GetDashboardStats -> GET /api/admin/stats
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var stats struct {
		TotalCustomers       int64 `json:"total_customers"`
		NewsletterOptIns     int64 `json:"newsletter_opt_ins"`
		TotalReservations    int64 `json:"total_reservations"`
		TodayReservations    int64 `json:"today_reservations"`
		UpcomingReservations int64 `json:"upcoming_reservations"`
	}

	now := time.Now().UTC()
	today := now.Format("2006-01-02")

	ac.DB.Model(&models.Customer{}).Count(&stats.TotalCustomers)
	ac.DB.Model(&models.Customer{}).Where("newsletter_opt_in = ?", true).Count(&stats.NewsletterOptIns)
	ac.DB.Model(&models.Reservation{}).Count(&stats.TotalReservations)
	ac.DB.Model(&models.Reservation{}).Where("DATE(time_slot) = ?", today).Count(&stats.TodayReservations)
	ac.DB.Model(&models.Reservation{}).Where("time_slot > ?", now).Count(&stats.UpcomingReservations)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

// ListCustomers -> GET /api/admin/customers
// ?newsletter=true narrows to newsletter subscribers.
func (ac *AdminController) ListCustomers(c *gin.Context) {
	query := ac.DB.Model(&models.Customer{})
	if c.Query("newsletter") == "true" {
		query = query.Where("newsletter_opt_in = ?", true)
	}

	var customers []models.Customer
	if err := query.Order("created_at DESC").Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}
