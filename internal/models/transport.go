package models

import "time"

// TransportListing is a goods-transport offer posted by a provider.
// Availability is the only field that changes after creation.
type TransportListing struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	VehicleType   string    `json:"vehicleType" gorm:"not null"`
	Capacity      float64   `json:"capacity" gorm:"not null;check:capacity > 0"`
	CapacityUnit  string    `json:"capacityUnit" gorm:"not null"`
	RatePerKm     float64   `json:"ratePerKm" gorm:"not null;check:rate_per_km > 0"`
	AvailableFrom string    `json:"availableFrom" gorm:"not null"`
	AvailableTo   string    `json:"availableTo"`
	AvailableDate string    `json:"availableDate"`
	ProviderName  string    `json:"providerName" gorm:"not null"`
	Contact       string    `json:"contact" gorm:"not null"`
	Description   string    `json:"description"`
	IsAvailable   bool      `json:"isAvailable" gorm:"not null;default:true"`
	ImagePath     string    `json:"imagePath"`
	CreatedAt     time.Time `json:"createdAt"`
}
