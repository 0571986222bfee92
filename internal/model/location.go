package model

// Location is a bowling alley the club plays at.
type Location struct {
	ID        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"not null"`
	Address   string `json:"address,omitempty"`
	CreatedBy int    `json:"created_by,omitempty"`
}
