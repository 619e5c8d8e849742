package models

import "time"

// Units a pesticide quantity can be expressed in.
const (
	UnitLiters  = "Liters"
	UnitKg      = "Kg"
	UnitBottles = "Bottles"
	UnitPackets = "Packets"
)

// PesticideUnits lists every accepted quantity unit.
var PesticideUnits = []string{UnitLiters, UnitKg, UnitBottles, UnitPackets}

// IsPesticideUnit reports whether unit is one of the accepted values.
func IsPesticideUnit(unit string) bool {
	for _, u := range PesticideUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// PesticideListing is a pesticide stock offer posted by a seller.
type PesticideListing struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	PesticideName string    `json:"pesticideName" gorm:"not null"`
	Quantity      float64   `json:"quantity" gorm:"not null;check:quantity > 0"`
	Unit          string    `json:"unit" gorm:"not null"`
	Price         float64   `json:"price" gorm:"not null;check:price > 0"`
	SellerName    string    `json:"sellerName" gorm:"not null"`
	Contact       string    `json:"contact" gorm:"not null"`
	Location      string    `json:"location" gorm:"not null"`
	ImagePath     string    `json:"imagePath"`
	CreatedAt     time.Time `json:"createdAt"`
}
