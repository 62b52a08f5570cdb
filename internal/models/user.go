package models

import "time"

// User represents a casino player account.
type User struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username    string     `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Password    string     `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Mail        string     `json:"mail" gorm:"type:varchar(255)" validate:"required"`
	PicturePath string     `json:"picture_path" gorm:"type:varchar(255)"`
	Admin       bool       `json:"admin"`
	Balance     float64    `json:"balance"`
	Joined      time.Time  `json:"joined"`
	BorderID    *string    `json:"border" gorm:"type:varchar(36)"`
	BannerID    *string    `json:"banner" gorm:"type:varchar(36)"`
	Cosmetics   []Cosmetic `json:"cosmetics" gorm:"many2many:user_cosmetics"`
	Friends     []*User    `json:"friends" gorm:"many2many:user_friends"`
}

// OwnsCosmetic reports whether the given cosmetic id is in the user's
// loaded ownership set. Callers that did not preload Cosmetics should go
// through the repository instead.
func (u *User) OwnsCosmetic(id string) bool {
	for _, c := range u.Cosmetics {
		if c.ID == id {
			return true
		}
	}
	return false
}
