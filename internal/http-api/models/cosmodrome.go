package models

import "fmt"

type Cosmodrome struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"type:varchar(200);not null"`
	Country     string `json:"country" gorm:"type:varchar(100);not null"`
	Location    string `json:"location" gorm:"type:varchar(300);not null"`
	FoundedYear *int   `json:"founded_year,omitempty"`
	Description string `json:"description" gorm:"type:text;not null"`
	IsActive    bool   `json:"is_active" gorm:"not null"`
}

func (Cosmodrome) TableName() string {
	return "cosmodromes"
}

func (c Cosmodrome) DisplayName() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Country)
}
