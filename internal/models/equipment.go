package models

// Equipment represents a piece of gear a character can carry.
type Equipment struct {
	ID     int64  `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"not null"`
	Type   string `json:"type"`
	MadeBy string `json:"made_by" gorm:"column:made_by"`
}

// TableName returns the database table name for the Equipment model.
func (Equipment) TableName() string {
	return "equipments"
}
