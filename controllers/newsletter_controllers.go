package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/cafefausse/cafe-fausse/models"
	"github.com/cafefausse/cafe-fausse/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NewsletterController struct {
	DB *gorm.DB
}

func NewNewsletterController(db *gorm.DB) *NewsletterController {
	return &NewsletterController{DB: db}
}

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Subscribe -> POST /api/newsletter
// Creates or updates the customer and sets the newsletter flag. The
// flag is never cleared here. Unlike reservations, this path does
// validate the email format.
func (nc *NewsletterController) Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	_ = c.ShouldBindJSON(&req)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)

	if email == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Email is required."))
		return
	}
	if !emailPattern.MatchString(email) {
		utils.RespondError(c, http.StatusUnprocessableEntity, errors.New("Invalid email format."))
		return
	}

	err := nc.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		err := tx.Where("email = ?", email).First(&customer).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			customer = models.Customer{Email: email, Name: name, NewsletterOptIn: true}
			return tx.Create(&customer).Error
		}
		if err != nil {
			return err
		}

		customer.NewsletterOptIn = true
		if name != "" {
			customer.Name = name
		}
		return tx.Save(&customer).Error
	})
	if err != nil {
		utils.ErrorLogger.Printf("newsletter subscribe failed for %s: %v", email, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Unable to subscribe right now."))
		return
	}

	utils.InfoLogger.Printf("Newsletter signup: %s", email)
	utils.RespondJSON(c, http.StatusCreated, "You are subscribed to the Café Fausse newsletter.", nil)
}
