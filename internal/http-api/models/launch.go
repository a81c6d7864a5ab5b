package models

import (
	"fmt"
	"time"
)

type LaunchStatus string

const (
	LaunchStatusSuccess LaunchStatus = "success"
	LaunchStatusFailure LaunchStatus = "failure"
	LaunchStatusPartial LaunchStatus = "partial"
	LaunchStatusPlanned LaunchStatus = "planned"
)

var LaunchStatuses = []Choice{
	{Value: string(LaunchStatusSuccess), Label: "Success"},
	{Value: string(LaunchStatusFailure), Label: "Failure"},
	{Value: string(LaunchStatusPartial), Label: "Partial success"},
	{Value: string(LaunchStatusPlanned), Label: "Planned"},
}

func (s LaunchStatus) Label() string {
	return labelFor(LaunchStatuses, string(s))
}

type Launch struct {
	ID           int64        `json:"id" gorm:"primaryKey;autoIncrement"`
	MissionName  string       `json:"mission_name" gorm:"type:varchar(300);not null"`
	RocketID     int64        `json:"rocket_id" gorm:"not null;index"`
	CosmodromeID int64        `json:"cosmodrome_id" gorm:"not null;index"`
	LaunchDate   time.Time    `json:"launch_date" gorm:"type:timestamptz;not null;index"`
	Status       LaunchStatus `json:"status" gorm:"type:varchar(20);not null"`
	Payload      string       `json:"payload" gorm:"type:varchar(500);not null"`
	Orbit        string       `json:"orbit" gorm:"type:varchar(100);not null"`
	Description  string       `json:"description" gorm:"type:text;not null"`
	// written once on insert, never by Save
	CreatedAt time.Time `json:"created_at" gorm:"type:timestamptz;autoCreateTime;<-:create"`

	// Associations
	Rocket     Rocket     `json:"rocket,omitempty" gorm:"foreignKey:RocketID;constraint:OnDelete:CASCADE;"`
	Cosmodrome Cosmodrome `json:"cosmodrome,omitempty" gorm:"foreignKey:CosmodromeID;constraint:OnDelete:CASCADE;"`
}

func (Launch) TableName() string {
	return "launches"
}

// DisplayName requires Rocket to be preloaded.
func (l Launch) DisplayName() string {
	return fmt.Sprintf("%s - %s (%s)", l.MissionName, l.Rocket.Name, l.LaunchDate.Format("02.01.2006"))
}
