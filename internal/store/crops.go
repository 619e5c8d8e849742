package store

import "github.com/nithinvarma/agrimarket-backend/internal/models"

// CreateCropListing validates and inserts a crop listing. The store assigns
// the id and creation timestamp.
func (s *Store) CreateCropListing(listing *models.CropListing) error {
	if err := checkText("crop name", listing.CropName); err != nil {
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
	if err := checkPositive("quantity", listing.Quantity); err != nil {
		return err
	}
	if err := checkPositive("price", listing.Price); err != nil {
		return err
	}

	listing.ID = 0
	if err := s.db.Create(listing).Error; err != nil {
		return &PersistenceError{Op: "insert crop listing", Err: err}
	}
	return nil
}

// AllCropListings returns every crop listing, most recent first.
func (s *Store) AllCropListings() ([]models.CropListing, error) {
	listings := []models.CropListing{}
	if err := s.db.Order("created_at DESC, id DESC").Find(&listings).Error; err != nil {
		return nil, &PersistenceError{Op: "list crop listings", Err: err}
	}
	return listings, nil
}

// DeleteCropListing removes a crop listing and reports whether a row was
// affected. Deleting an unknown id is not an error.
func (s *Store) DeleteCropListing(id uint) (bool, error) {
	result := s.db.Delete(&models.CropListing{}, id)
	if result.Error != nil {
		return false, &PersistenceError{Op: "delete crop listing", Err: result.Error}
	}
	return result.RowsAffected > 0, nil
}
