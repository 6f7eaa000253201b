package models

// Character represents a realm inhabitant.
type Character struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	BirthDate   string `json:"birth_date" gorm:"column:birth_date"`
	Kingdom     string `json:"kingdom"`
	EquipmentID int64  `json:"equipment_id" gorm:"column:equipment_id"`
	FactionID   int64  `json:"faction_id" gorm:"column:faction_id"`
}

// TableName returns the database table name for the Character model.
func (Character) TableName() string {
	return "characters"
}
