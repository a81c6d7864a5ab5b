package models

import "fmt"

type RocketType string

const (
	RocketTypeOrbital    RocketType = "orbital"
	RocketTypeSuborbital RocketType = "suborbital"
	RocketTypeHeavy      RocketType = "heavy"
	RocketTypeSuperHeavy RocketType = "super_heavy"
)

// RocketTypes lists the accepted rocket types in form display order.
var RocketTypes = []Choice{
	{Value: string(RocketTypeOrbital), Label: "Orbital"},
	{Value: string(RocketTypeSuborbital), Label: "Suborbital"},
	{Value: string(RocketTypeHeavy), Label: "Heavy"},
	{Value: string(RocketTypeSuperHeavy), Label: "Super heavy"},
}

func (t RocketType) Label() string {
	return labelFor(RocketTypes, string(t))
}

type RocketStatus string

const (
	RocketStatusActive      RocketStatus = "active"
	RocketStatusRetired     RocketStatus = "retired"
	RocketStatusDevelopment RocketStatus = "development"
)

var RocketStatuses = []Choice{
	{Value: string(RocketStatusActive), Label: "Active"},
	{Value: string(RocketStatusRetired), Label: "Retired"},
	{Value: string(RocketStatusDevelopment), Label: "In development"},
}

func (s RocketStatus) Label() string {
	return labelFor(RocketStatuses, string(s))
}

const DefaultRocketStages = 2

type Rocket struct {
	ID              int64        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string       `json:"name" gorm:"type:varchar(200);not null"`
	Manufacturer    string       `json:"manufacturer" gorm:"type:varchar(200);not null"`
	Country         string       `json:"country" gorm:"type:varchar(100);not null"`
	RocketType      RocketType   `json:"rocket_type" gorm:"type:varchar(20);not null"`
	Status          RocketStatus `json:"status" gorm:"type:varchar(20);not null"`
	FirstFlightYear *int         `json:"first_flight_year,omitempty"`
	Height          *float64     `json:"height,omitempty" gorm:"type:decimal(6,2)"`
	Diameter        *float64     `json:"diameter,omitempty" gorm:"type:decimal(5,2)"`
	Mass            *float64     `json:"mass,omitempty" gorm:"type:decimal(10,2)"`
	PayloadToLEO    *float64     `json:"payload_to_leo,omitempty" gorm:"column:payload_to_leo;type:decimal(10,2)"`
	Stages          int          `json:"stages" gorm:"not null"`
	Description     string       `json:"description" gorm:"type:text;not null"`
}

func (Rocket) TableName() string {
	return "rockets"
}

// DisplayName is the human-readable name used in flashes and selects.
func (r Rocket) DisplayName() string {
	return fmt.Sprintf("%s (%s)", r.Name, r.Manufacturer)
}
