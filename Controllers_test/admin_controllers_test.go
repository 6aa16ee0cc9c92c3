package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cafefausse/cafe-fausse/controllers"
	"github.com/cafefausse/cafe-fausse/middlewares"
	"github.com/cafefausse/cafe-fausse/models"
	"github.com/cafefausse/cafe-fausse/utils"
)

func setupTestDBForAdmin(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Reservation{}, &models.User{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func setupAdminRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	adminCtrl := controllers.NewAdminController(db, "admin", "admin")
	router.POST("/api/admin", adminCtrl.Login)

	adminGroup := router.Group("/api/admin")
	adminGroup.Use(middlewares.AuthMiddleware())
	adminGroup.GET("/stats", adminCtrl.GetDashboardStats)
	adminGroup.GET("/customers", adminCtrl.ListCustomers)
	return router
}

func adminLogin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := postJSON(t, router, "/api/admin", map[string]interface{}{
		"username": "admin",
		"password": "admin",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func TestAdminLoginSuccess(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAdmin(t)
	router := setupAdminRouter(db)

	token := adminLogin(t, router)

	claims, err := utils.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestAdminLoginBadCredentials(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAdmin(t)
	router := setupAdminRouter(db)

	w := postJSON(t, router, "/api/admin", map[string]interface{}{
		"username": "admin",
		"password": "wrongpwd",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Invalid credentials.", response["message"])
}

func TestAdminLoginMissingFields(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAdmin(t)
	router := setupAdminRouter(db)

	payloads := []map[string]interface{}{
		{},
		{"password": "admin"},
		{"username": "admin"},
	}
	for _, payload := range payloads {
		w := postJSON(t, router, "/api/admin", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestAdminStatsRequiresToken(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAdmin(t)
	router := setupAdminRouter(db)

	req, err := http.NewRequest("GET", "/api/admin/stats", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminDashboardStats(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAdmin(t)
	router := setupAdminRouter(db)

	subscriber := models.Customer{Name: "Sub", Email: "sub@example.com", NewsletterOptIn: true}
	guest := models.Customer{Name: "Guest", Email: "guest@example.com"}
	assert.NoError(t, db.Create(&subscriber).Error)
	assert.NoError(t, db.Create(&guest).Error)

	upcoming := models.Reservation{
		CustomerID:  guest.ID,
		TimeSlot:    time.Now().UTC().Add(48 * time.Hour),
		PartySize:   2,
		TableNumber: 1,
	}
	past := models.Reservation{
		CustomerID:  guest.ID,
		TimeSlot:    time.Now().UTC().Add(-48 * time.Hour),
		PartySize:   4,
		TableNumber: 2,
	}
	assert.NoError(t, db.Create(&upcoming).Error)
	assert.NoError(t, db.Create(&past).Error)

	token := adminLogin(t, router)
	req, err := http.NewRequest("GET", "/api/admin/stats", nil)
	assert.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.EqualValues(t, 2, data["total_customers"])
	assert.EqualValues(t, 1, data["newsletter_opt_ins"])
	assert.EqualValues(t, 2, data["total_reservations"])
	assert.EqualValues(t, 1, data["upcoming_reservations"])
}

func TestAdminListCustomersNewsletterFilter(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAdmin(t)
	router := setupAdminRouter(db)

	assert.NoError(t, db.Create(&models.Customer{Email: "a@example.com", NewsletterOptIn: true}).Error)
	assert.NoError(t, db.Create(&models.Customer{Email: "b@example.com"}).Error)

	token := adminLogin(t, router)
	req, err := http.NewRequest("GET", "/api/admin/customers?newsletter=true", nil)
	assert.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
	customer := data[0].(map[string]interface{})
	assert.Equal(t, "a@example.com", customer["email"])
}
