package store

import "github.com/nithinvarma/agrimarket-backend/internal/models"

// CreatePesticideListing validates and inserts a pesticide listing.
func (s *Store) CreatePesticideListing(listing *models.PesticideListing) error {
	if err := checkText("pesticide name", listing.PesticideName); err != nil {
		return err
	}
	if err := checkText("seller name", listing.SellerName); err != nil {
		return err
	}
	if err := checkText("location", listing.Location); err != nil {
		return err
	}
	if err := checkContact(listing.Contact); err != nil {
		return err
	}
	if !models.IsPesticideUnit(listing.Unit) {
		return &ValidationError{Field: "unit", Reason: "must be one of Liters, Kg, Bottles or Packets"}
	}
	if err := checkPositive("quantity", listing.Quantity); err != nil {
		return err
	}
	if err := checkPositive("price", listing.Price); err != nil {
		return err
	}

	listing.ID = 0
	if err := s.db.Create(listing).Error; err != nil {
		return &PersistenceError{Op: "insert pesticide listing", Err: err}
	}
	return nil
}

// AllPesticideListings returns every pesticide listing, most recent first.
func (s *Store) AllPesticideListings() ([]models.PesticideListing, error) {
	listings := []models.PesticideListing{}
	if err := s.db.Order("created_at DESC, id DESC").Find(&listings).Error; err != nil {
		return nil, &PersistenceError{Op: "list pesticide listings", Err: err}
	}
	return listings, nil
}

// DeletePesticideListing removes a pesticide listing and reports whether a
// row was affected.
func (s *Store) DeletePesticideListing(id uint) (bool, error) {
	result := s.db.Delete(&models.PesticideListing{}, id)
	if result.Error != nil {
		return false, &PersistenceError{Op: "delete pesticide listing", Err: result.Error}
	}
	return result.RowsAffected > 0, nil
}
