package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nithinvarma/agrimarket-backend/internal/models"
	"github.com/nithinvarma/agrimarket-backend/internal/services"
	"github.com/nithinvarma/agrimarket-backend/internal/store"
)

// CreatePesticideListing handles a seller's pesticide form submission.
func CreatePesticideListing(st *store.Store, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			PesticideName string  `form:"pesticideName" binding:"required"`
			Quantity      float64 `form:"quantity" binding:"required,gt=0"`
			Unit          string  `form:"unit" binding:"required,oneof=Liters Kg Bottles Packets"`
			Price         float64 `form:"price" binding:"required,gt=0"`
			SellerName    string  `form:"sellerName" binding:"required"`
			Contact       string  `form:"contact" binding:"required,inphone"`
			Location      string  `form:"location" binding:"required"`
		}

		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		listing := models.PesticideListing{
			PesticideName: input.PesticideName,
			Quantity:      input.Quantity,
			Unit:          input.Unit,
			Price:         input.Price,
			SellerName:    input.SellerName,
			Contact:       input.Contact,
			Location:      input.Location,
			ImagePath:     optionalImage(c),
		}

		if err := st.CreatePesticideListing(&listing); err != nil {
			storeError(c, err)
			return
		}

		hub.BroadcastEvent(services.EventPesticideListed, listing)
		c.JSON(http.StatusCreated, listing)
	}
}

// GetPesticideListings returns all pesticide listings, most recent first.
func GetPesticideListings(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := st.AllPesticideListings()
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, listings)
	}
}

// DeletePesticideListing removes a pesticide listing by id.
func DeletePesticideListing(st *store.Store, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		removed, err := st.DeletePesticideListing(id)
		if err != nil {
			storeError(c, err)
			return
		}
		if !removed {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pesticide listing not found"})
			return
		}

		hub.BroadcastEvent(services.EventListingDeleted, gin.H{"kind": "pesticide", "id": id})
		c.JSON(http.StatusOK, gin.H{"message": "Pesticide listing deleted"})
	}
}
