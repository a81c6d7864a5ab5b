package dto

import (
	"strconv"

	"rockethub/internal/http-api/models"
)

// RocketForm is the create/edit form for a rocket. Values stay raw strings so
// a rejected submission can be echoed back exactly as typed.
type RocketForm struct {
	Name            string `form:"name" binding:"required,max=200"`
	Manufacturer    string `form:"manufacturer" binding:"required,max=200"`
	Country         string `form:"country" binding:"required,max=100"`
	RocketType      string `form:"rocket_type" binding:"omitempty,oneof=orbital suborbital heavy super_heavy"`
	Status          string `form:"status" binding:"omitempty,oneof=active retired development"`
	FirstFlightYear string `form:"first_flight_year"`
	Height          string `form:"height"`
	Diameter        string `form:"diameter"`
	Mass            string `form:"mass"`
	PayloadToLEO    string `form:"payload_to_leo"`
	Stages          string `form:"stages"`
	Description     string `form:"description"`
}

// NewRocketForm returns the blank create form with defaults filled in.
func NewRocketForm() RocketForm {
	return RocketForm{
		RocketType: string(models.RocketTypeOrbital),
		Status:     string(models.RocketStatusActive),
		Stages:     strconv.Itoa(models.DefaultRocketStages),
	}
}

func RocketFormFromModel(r models.Rocket) RocketForm {
	return RocketForm{
		Name:            r.Name,
		Manufacturer:    r.Manufacturer,
		Country:         r.Country,
		RocketType:      string(r.RocketType),
		Status:          string(r.Status),
		FirstFlightYear: formatOptionalInt(r.FirstFlightYear),
		Height:          formatOptionalDecimal(r.Height),
		Diameter:        formatOptionalDecimal(r.Diameter),
		Mass:            formatOptionalDecimal(r.Mass),
		PayloadToLEO:    formatOptionalDecimal(r.PayloadToLEO),
		Stages:          strconv.Itoa(r.Stages),
		Description:     r.Description,
	}
}

// Clean parses the typed fields. The returned rocket is only meaningful when
// no errors are reported; its ID is left zero.
func (f RocketForm) Clean() (models.Rocket, FieldErrors) {
	errs := FieldErrors{}
	r := models.Rocket{
		Name:         f.Name,
		Manufacturer: f.Manufacturer,
		Country:      f.Country,
		RocketType:   models.RocketType(f.RocketType),
		Status:       models.RocketStatus(f.Status),
		Stages:       models.DefaultRocketStages,
		Description:  f.Description,
	}
	if r.RocketType == "" {
		r.RocketType = models.RocketTypeOrbital
	}
	if r.Status == "" {
		r.Status = models.RocketStatusActive
	}

	var msg string
	if r.FirstFlightYear, msg = parseOptionalInt(f.FirstFlightYear); msg != "" {
		errs.Add("first_flight_year", msg)
	} else if y := r.FirstFlightYear; y != nil && (*y < 1900 || *y > 2100) {
		errs.Add("first_flight_year", "Enter a year between 1900 and 2100.")
	}
	if r.Height, msg = parseOptionalDecimal(f.Height, 6, 2); msg != "" {
		errs.Add("height", msg)
	}
	if r.Diameter, msg = parseOptionalDecimal(f.Diameter, 5, 2); msg != "" {
		errs.Add("diameter", msg)
	}
	if r.Mass, msg = parseOptionalDecimal(f.Mass, 10, 2); msg != "" {
		errs.Add("mass", msg)
	}
	if r.PayloadToLEO, msg = parseOptionalDecimal(f.PayloadToLEO, 10, 2); msg != "" {
		errs.Add("payload_to_leo", msg)
	}
	if f.Stages != "" {
		stages, err := strconv.Atoi(f.Stages)
		switch {
		case err != nil:
			errs.Add("stages", msgWholeNumber)
		case stages < 0:
			errs.Add("stages", "Ensure this value is greater than or equal to 0.")
		default:
			r.Stages = stages
		}
	}
	return r, errs
}
