package models

import "time"

// CropListing is a harvested-produce offer posted by a seller.
type CropListing struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CropName   string    `json:"cropName" gorm:"not null"`
	Quantity   float64   `json:"quantity" gorm:"not null;check:quantity > 0"`
	Price      float64   `json:"price" gorm:"not null;check:price > 0"`
	SellerName string    `json:"sellerName" gorm:"not null"`
	Contact    string    `json:"contact" gorm:"not null"`
	Location   string    `json:"location" gorm:"not null"`
	ImagePath  string    `json:"imagePath"`
	CreatedAt  time.Time `json:"createdAt"`
}
