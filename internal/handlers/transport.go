package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nithinvarma/agrimarket-backend/internal/models"
	"github.com/nithinvarma/agrimarket-backend/internal/services"
	"github.com/nithinvarma/agrimarket-backend/internal/store"
	"github.com/nithinvarma/agrimarket-backend/pkg/utils"
)

// CreateTransportListing handles a provider's transport offer submission.
func CreateTransportListing(st *store.Store, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			VehicleType   string  `form:"vehicleType" binding:"required"`
			Capacity      float64 `form:"capacity" binding:"required,gt=0"`
			CapacityUnit  string  `form:"capacityUnit" binding:"required"`
			RatePerKm     float64 `form:"ratePerKm" binding:"required,gt=0"`
			AvailableFrom string  `form:"availableFrom" binding:"required"`
			AvailableTo   string  `form:"availableTo"`
			AvailableDate string  `form:"availableDate"`
			ProviderName  string  `form:"providerName" binding:"required"`
			Contact       string  `form:"contact" binding:"required,inphone"`
			Description   string  `form:"description"`
		}

		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		listing := models.TransportListing{
			VehicleType:   input.VehicleType,
			Capacity:      input.Capacity,
			CapacityUnit:  input.CapacityUnit,
			RatePerKm:     input.RatePerKm,
			AvailableFrom: input.AvailableFrom,
			AvailableTo:   input.AvailableTo,
			AvailableDate: input.AvailableDate,
			ProviderName:  input.ProviderName,
			Contact:       input.Contact,
			Description:   input.Description,
			ImagePath:     optionalImage(c),
		}

		if err := st.CreateTransportListing(&listing); err != nil {
			storeError(c, err)
			return
		}

		hub.BroadcastEvent(services.EventTransportListed, listing)
		c.JSON(http.StatusCreated, listing)
	}
}

// GetTransportListings returns all transport listings, most recent first.
func GetTransportListings(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := st.AllTransportListings()
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, listings)
	}
}

// GetAvailableTransport returns listings currently accepting bookings,
// optionally filtered by vehicle type and starting location.
func GetAvailableTransport(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := store.TransportFilter{
			VehicleType:   c.Query("vehicleType"),
			AvailableFrom: c.Query("availableFrom"),
		}

		listings, err := st.AvailableTransportListings(filter)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, listings)
	}
}

// GetTransportEstimate quotes the cost of a trip of the given distance
// with a specific provider.
func GetTransportEstimate(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		distance, err := strconv.ParseFloat(c.Query("distance"), 64)
		if err != nil || distance <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "distance must be a positive number of kilometers"})
			return
		}

		listing, err := st.GetTransportListing(id)
		if err != nil {
			storeError(c, err)
			return
		}
		if listing == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transport listing not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"listingId": listing.ID,
			"ratePerKm": listing.RatePerKm,
			"distance":  distance,
			"cost":      utils.EstimateTransportCost(listing.RatePerKm, distance),
		})
	}
}

// UpdateTransportAvailability toggles whether a listing accepts bookings.
func UpdateTransportAvailability(st *store.Store, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var input struct {
			IsAvailable *bool `json:"isAvailable" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated, err := st.SetTransportAvailability(id, *input.IsAvailable)
		if err != nil {
			storeError(c, err)
			return
		}
		if !updated {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transport listing not found"})
			return
		}

		hub.BroadcastEvent(services.EventAvailabilityChanged, gin.H{"id": id, "isAvailable": *input.IsAvailable})
		c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
	}
}

// DeleteTransportListing removes a transport listing by id.
func DeleteTransportListing(st *store.Store, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		removed, err := st.DeleteTransportListing(id)
		if err != nil {
			storeError(c, err)
			return
		}
		if !removed {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transport listing not found"})
			return
		}

		hub.BroadcastEvent(services.EventListingDeleted, gin.H{"kind": "transport", "id": id})
		c.JSON(http.StatusOK, gin.H{"message": "Transport listing deleted"})
	}
}
