package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nithinvarma/agrimarket-backend/internal/models"
	"github.com/nithinvarma/agrimarket-backend/internal/services"
	"github.com/nithinvarma/agrimarket-backend/internal/store"
)

// CreateCropListing handles a seller's crop form submission, with an
// optional product image.
func CreateCropListing(st *store.Store, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			CropName   string  `form:"cropName" binding:"required"`
			Quantity   float64 `form:"quantity" binding:"required,gt=0"`
			Price      float64 `form:"price" binding:"required,gt=0"`
			SellerName string  `form:"sellerName" binding:"required"`
			Contact    string  `form:"contact" binding:"required,inphone"`
			Location   string  `form:"location" binding:"required"`
		}

		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		listing := models.CropListing{
			CropName:   input.CropName,
			Quantity:   input.Quantity,
			Price:      input.Price,
			SellerName: input.SellerName,
			Contact:    input.Contact,
			Location:   input.Location,
			ImagePath:  optionalImage(c),
		}

		if err := st.CreateCropListing(&listing); err != nil {
			storeError(c, err)
			return
		}

		hub.BroadcastEvent(services.EventCropListed, listing)
		c.JSON(http.StatusCreated, listing)
	}
}

// GetCropListings returns all crop listings, most recent first.
func GetCropListings(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := st.AllCropListings()
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, listings)
	}
}

// DeleteCropListing removes a crop listing by id.
func DeleteCropListing(st *store.Store, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		removed, err := st.DeleteCropListing(id)
		if err != nil {
			storeError(c, err)
			return
		}
		if !removed {
			c.JSON(http.StatusNotFound, gin.H{"error": "Crop listing not found"})
			return
		}

		hub.BroadcastEvent(services.EventListingDeleted, gin.H{"kind": "crop", "id": id})
		c.JSON(http.StatusOK, gin.H{"message": "Crop listing deleted"})
	}
}
