package models

// Setting represents a site configuration entry stored as one row per key.
type Setting struct {
	ID    uint64 `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"column:key;unique;size:100;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}
