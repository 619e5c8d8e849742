package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nithinvarma/agrimarket-backend/internal/services"
	"github.com/nithinvarma/agrimarket-backend/internal/store"
)

// storeError maps the store's error taxonomy onto HTTP responses: bad
// input is the caller's fault, anything else is ours.
func storeError(c *gin.Context, err error) {
	var verr *store.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// optionalImage saves an uploaded image if one was attached. Failures are
// logged and the listing proceeds without an image.
func optionalImage(c *gin.Context) string {
	file, err := c.FormFile("image")
	if err != nil {
		return ""
	}

	path, err := services.SaveListingImage(file)
	if err != nil {
		log.Printf("Skipping listing image %q: %v", file.Filename, err)
		return ""
	}
	return path
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing id"})
		return 0, false
	}
	return uint(id), true
}
