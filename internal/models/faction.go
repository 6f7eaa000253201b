package models

// Faction represents an allegiance group characters belong to.
type Faction struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	FactionName string `json:"faction_name" gorm:"column:faction_name;not null"`
	Description string `json:"description"`
}

// TableName returns the database table name for the Faction model.
func (Faction) TableName() string {
	return "factions"
}
