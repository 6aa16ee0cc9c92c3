package Controllers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cafefausse/cafe-fausse/controllers"
	"github.com/cafefausse/cafe-fausse/models"
	"github.com/cafefausse/cafe-fausse/utils"
)

func setupTestDBForNewsletter(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Reservation{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func setupNewsletterRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	newsletterCtrl := controllers.NewNewsletterController(db)
	router.POST("/api/newsletter", newsletterCtrl.Subscribe)
	return router
}

func TestNewsletterSubscription(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForNewsletter(t)
	router := setupNewsletterRouter(db)

	w := postJSON(t, router, "/api/newsletter", map[string]interface{}{
		"email": "subscriber@example.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, strings.ToLower(response["message"].(string)), "newsletter")

	var customer models.Customer
	assert.NoError(t, db.Where("email = ?", "subscriber@example.com").First(&customer).Error)
	assert.True(t, customer.NewsletterOptIn)
}

func TestNewsletterSubscriptionMissingEmail(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForNewsletter(t)
	router := setupNewsletterRouter(db)

	w := postJSON(t, router, "/api/newsletter", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, strings.ToLower(response["message"].(string)), "email")
}

func TestNewsletterSubscriptionInvalidEmail(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForNewsletter(t)
	router := setupNewsletterRouter(db)

	w := postJSON(t, router, "/api/newsletter", map[string]interface{}{
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var customerCount int64
	db.Model(&models.Customer{}).Count(&customerCount)
	assert.Zero(t, customerCount)
}

func TestNewsletterResubscribeIsIdempotent(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForNewsletter(t)
	router := setupNewsletterRouter(db)

	w := postJSON(t, router, "/api/newsletter", map[string]interface{}{
		"email": "repeat@example.com",
		"name":  "First Name",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Same address, different case, refreshed name.
	w = postJSON(t, router, "/api/newsletter", map[string]interface{}{
		"email": "Repeat@Example.com",
		"name":  "Second Name",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var customers []models.Customer
	assert.NoError(t, db.Find(&customers).Error)
	assert.Len(t, customers, 1)
	assert.Equal(t, "repeat@example.com", customers[0].Email)
	assert.Equal(t, "Second Name", customers[0].Name)
	assert.True(t, customers[0].NewsletterOptIn)
}

func TestNewsletterKeepsExistingCustomerPhone(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForNewsletter(t)
	router := setupNewsletterRouter(db)

	phone := "555-0100"
	existing := models.Customer{Name: "Jane", Email: "jane@example.com", Phone: &phone}
	assert.NoError(t, db.Create(&existing).Error)

	w := postJSON(t, router, "/api/newsletter", map[string]interface{}{
		"email": "jane@example.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var customer models.Customer
	assert.NoError(t, db.Where("email = ?", "jane@example.com").First(&customer).Error)
	assert.True(t, customer.NewsletterOptIn)
	assert.Equal(t, "Jane", customer.Name)
	if assert.NotNil(t, customer.Phone) {
		assert.Equal(t, "555-0100", *customer.Phone)
	}
}
