package entities

import (
	"github.com/google/uuid"
)

type LabelScan struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Barcode        string    `json:"barcode"`
	ImageURL       string    `json:"image_url"`
	Status         string    `json:"status"` // "Pending", "Processed", "ManualRequired", "Failed"
	RecognizedText string    `json:"recognized_text,omitempty" gorm:"type:text"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
