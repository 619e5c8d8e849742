package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/nithinvarma/agrimarket-backend/internal/database"
	"github.com/nithinvarma/agrimarket-backend/internal/middleware"
	"github.com/nithinvarma/agrimarket-backend/internal/models"
	"github.com/nithinvarma/agrimarket-backend/internal/services"
	"github.com/nithinvarma/agrimarket-backend/internal/store"
	"github.com/nithinvarma/agrimarket-backend/internal/validation"
	"github.com/nithinvarma/agrimarket-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("UPLOAD_DIR", filepath.Join(t.TempDir(), "uploads"))
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, services.InitStorage())
	validation.RegisterBindings()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	st := store.New(db)
	hub := services.NewHub()
	go hub.Run()

	r := gin.New()
	api := r.Group("/api")

	crops := api.Group("/crops")
	crops.GET("", GetCropListings(st))
	crops.POST("", CreateCropListing(st, hub))
	crops.DELETE("/:id", middleware.AuthMiddleware(), DeleteCropListing(st, hub))

	pesticides := api.Group("/pesticides")
	pesticides.GET("", GetPesticideListings(st))
	pesticides.POST("", CreatePesticideListing(st, hub))
	pesticides.DELETE("/:id", middleware.AuthMiddleware(), DeletePesticideListing(st, hub))

	transport := api.Group("/transport")
	transport.GET("", GetTransportListings(st))
	transport.GET("/available", GetAvailableTransport(st))
	transport.GET("/:id/estimate", GetTransportEstimate(st))
	transport.POST("", CreateTransportListing(st, hub))
	transport.PATCH("/:id/availability", middleware.AuthMiddleware(), UpdateTransportAvailability(st, hub))
	transport.DELETE("/:id", middleware.AuthMiddleware(), DeleteTransportListing(st, hub))

	return r
}

func postForm(t *testing.T, r http.Handler, url string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func doJSON(t *testing.T, r http.Handler, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, url, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func cropForm(name string) map[string]string {
	return map[string]string{
		"cropName":   name,
		"quantity":   "100",
		"price":      "25.5",
		"sellerName": "Ramesh Kumar",
		"contact":    "9876543210",
		"location":   "Nashik, Maharashtra",
	}
}

func transportForm() map[string]string {
	return map[string]string{
		"vehicleType":   "Mini Truck",
		"capacity":      "2",
		"capacityUnit":  "Tons",
		"ratePerKm":     "35",
		"availableFrom": "Nashik",
		"providerName":  "Vijay Transport",
		"contact":       "9876543210",
	}
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateSessionToken()
	require.NoError(t, err)
	return token
}

func TestCreateAndListCrops(t *testing.T) {
	r := setupRouter(t)

	for _, name := range []string{"Wheat", "Rice", "Maize"} {
		rec := postForm(t, r, "/api/crops", cropForm(name))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/crops", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listings []models.CropListing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	require.Len(t, listings, 3)
	assert.Equal(t, "Maize", listings[0].CropName)
	assert.Equal(t, "Rice", listings[1].CropName)
	assert.Equal(t, "Wheat", listings[2].CropName)
}

func TestCreateCropRejectsBadContact(t *testing.T) {
	r := setupRouter(t)

	form := cropForm("Wheat")
	form["contact"] = "1234567890"
	rec := postForm(t, r, "/api/crops", form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/crops", nil)
	listRec := httptest.NewRecorder()
	r.ServeHTTP(listRec, req)

	var listings []models.CropListing
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &listings))
	assert.Empty(t, listings)
}

func TestCreatePesticideRejectsUnknownUnit(t *testing.T) {
	r := setupRouter(t)

	rec := postForm(t, r, "/api/pesticides", map[string]string{
		"pesticideName": "Neem Oil",
		"quantity":      "5",
		"unit":          "Barrels",
		"price":         "450",
		"sellerName":    "Suresh Patil",
		"contact":       "9876543210",
		"location":      "Pune, Maharashtra",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCropRequiresSession(t *testing.T) {
	r := setupRouter(t)

	rec := doJSON(t, r, http.MethodDelete, "/api/crops/1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteCropWithSession(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	created := postForm(t, r, "/api/crops", cropForm("Wheat"))
	require.Equal(t, http.StatusCreated, created.Code)

	var listing models.CropListing
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &listing))

	url := fmt.Sprintf("/api/crops/%d", listing.ID)
	rec := doJSON(t, r, http.MethodDelete, url, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Deleting again reports not found rather than erroring.
	rec = doJSON(t, r, http.MethodDelete, url, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTransportEstimate(t *testing.T) {
	r := setupRouter(t)

	created := postForm(t, r, "/api/transport", transportForm())
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	var listing models.TransportListing
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &listing))

	rec := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/transport/%d/estimate?distance=10", listing.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var quote struct {
		Cost      float64 `json:"cost"`
		RatePerKm float64 `json:"ratePerKm"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Equal(t, 350.0, quote.Cost)
	assert.Equal(t, 35.0, quote.RatePerKm)

	rec = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/transport/%d/estimate?distance=0", listing.ID), "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/transport/999/estimate?distance=10", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTransportAvailabilityFlow(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	created := postForm(t, r, "/api/transport", transportForm())
	require.Equal(t, http.StatusCreated, created.Code)

	var listing models.TransportListing
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &listing))

	availableIDs := func() []uint {
		rec := doJSON(t, r, http.MethodGet, "/api/transport/available", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var listings []models.TransportListing
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
		ids := make([]uint, 0, len(listings))
		for _, l := range listings {
			ids = append(ids, l.ID)
		}
		return ids
	}

	assert.Contains(t, availableIDs(), listing.ID)

	url := fmt.Sprintf("/api/transport/%d/availability", listing.ID)
	rec := doJSON(t, r, http.MethodPatch, url, token, gin.H{"isAvailable": false})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotContains(t, availableIDs(), listing.ID)

	rec = doJSON(t, r, http.MethodPatch, url, token, gin.H{"isAvailable": true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, availableIDs(), listing.ID)

	rec = doJSON(t, r, http.MethodPatch, "/api/transport/999/availability", token, gin.H{"isAvailable": false})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
