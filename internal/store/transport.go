package store

import (
	"errors"

	"github.com/nithinvarma/agrimarket-backend/internal/models"
	"gorm.io/gorm"
)

// TransportFilter narrows available-transport queries. Zero-value fields
// are ignored.
type TransportFilter struct {
	VehicleType   string
	AvailableFrom string
}

// CreateTransportListing validates and inserts a transport listing. New
// listings always start out available.
func (s *Store) CreateTransportListing(listing *models.TransportListing) error {
	if err := checkText("vehicle type", listing.VehicleType); err != nil {
		return err
	}
	if err := checkText("capacity unit", listing.CapacityUnit); err != nil {
		return err
	}
	if err := checkText("provider name", listing.ProviderName); err != nil {
		return err
	}
	if err := checkText("starting location", listing.AvailableFrom); err != nil {
		return err
	}
	if err := checkContact(listing.Contact); err != nil {
		return err
	}
	if err := checkPositive("capacity", listing.Capacity); err != nil {
		return err
	}
	if err := checkPositive("rate per km", listing.RatePerKm); err != nil {
		return err
	}

	listing.ID = 0
	listing.IsAvailable = true
	if err := s.db.Create(listing).Error; err != nil {
		return &PersistenceError{Op: "insert transport listing", Err: err}
	}
	return nil
}

// AllTransportListings returns every transport listing, most recent first.
func (s *Store) AllTransportListings() ([]models.TransportListing, error) {
	listings := []models.TransportListing{}
	if err := s.db.Order("created_at DESC, id DESC").Find(&listings).Error; err != nil {
		return nil, &PersistenceError{Op: "list transport listings", Err: err}
	}
	return listings, nil
}

// AvailableTransportListings returns listings currently accepting bookings,
// optionally narrowed by vehicle type and starting location.
func (s *Store) AvailableTransportListings(filter TransportFilter) ([]models.TransportListing, error) {
	query := s.db.Where("is_available = ?", true)
	if filter.VehicleType != "" {
		query = query.Where("vehicle_type = ?", filter.VehicleType)
	}
	if filter.AvailableFrom != "" {
		query = query.Where("available_from = ?", filter.AvailableFrom)
	}

	listings := []models.TransportListing{}
	if err := query.Order("created_at DESC, id DESC").Find(&listings).Error; err != nil {
		return nil, &PersistenceError{Op: "list available transport listings", Err: err}
	}
	return listings, nil
}

// GetTransportListing fetches one listing by id, or nil if it doesn't exist.
func (s *Store) GetTransportListing(id uint) (*models.TransportListing, error) {
	var listing models.TransportListing
	err := s.db.First(&listing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "get transport listing", Err: err}
	}
	return &listing, nil
}

// SetTransportAvailability flips the availability flag and reports whether
// a row was affected. An unknown id is a no-op reporting false.
func (s *Store) SetTransportAvailability(id uint, available bool) (bool, error) {
	result := s.db.Model(&models.TransportListing{}).
		Where("id = ?", id).
		Update("is_available", available)
	if result.Error != nil {
		return false, &PersistenceError{Op: "update transport availability", Err: result.Error}
	}
	return result.RowsAffected > 0, nil
}

// DeleteTransportListing removes a transport listing and reports whether a
// row was affected. Image files are left in place.
func (s *Store) DeleteTransportListing(id uint) (bool, error) {
	result := s.db.Delete(&models.TransportListing{}, id)
	if result.Error != nil {
		return false, &PersistenceError{Op: "delete transport listing", Err: result.Error}
	}
	return result.RowsAffected > 0, nil
}
