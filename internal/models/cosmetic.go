package models

// Cosmetic categories. Frames occupy the border equip slot and banners
// the banner slot; emotes are ownable but have no slot.
const (
	CosmeticFrame  = "frame"
	CosmeticBanner = "banner"
	CosmeticEmote  = "emote"
)

// Cosmetic represents a purchasable visual item.
type Cosmetic struct {
	ID           string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name         string  `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	Type         string  `json:"type" gorm:"type:varchar(20)" validate:"required,oneof=frame banner emote"`
	ResourcePath string  `json:"resource_path" gorm:"type:varchar(255)"`
	Value        float64 `json:"value" validate:"gte=0"`
}
