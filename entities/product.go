package entities

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Barcode     string    `gorm:"primaryKey" json:"barcode"`
	ProductName string    `json:"product_name,omitempty"`
	ExpiryDate  time.Time `json:"expiry_date"`
	Type        string    `json:"type"` // "GS1", "Calculated", "Manual"
	Notified    bool      `json:"notified"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
