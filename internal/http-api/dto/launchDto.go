package dto

import (
	"strconv"

	"rockethub/internal/http-api/models"
)

// LaunchForm has no created_at field: the server stamps it on insert.
type LaunchForm struct {
	MissionName string `form:"mission_name" binding:"required,max=300"`
	Rocket      string `form:"rocket" binding:"required"`
	Cosmodrome  string `form:"cosmodrome" binding:"required"`
	LaunchDate  string `form:"launch_date" binding:"required"`
	Status      string `form:"status" binding:"omitempty,oneof=success failure partial planned"`
	Payload     string `form:"payload" binding:"max=500"`
	Orbit       string `form:"orbit" binding:"max=100"`
	Description string `form:"description"`
}

func NewLaunchForm() LaunchForm {
	return LaunchForm{Status: string(models.LaunchStatusPlanned)}
}

func LaunchFormFromModel(l models.Launch) LaunchForm {
	return LaunchForm{
		MissionName: l.MissionName,
		Rocket:      strconv.FormatInt(l.RocketID, 10),
		Cosmodrome:  strconv.FormatInt(l.CosmodromeID, 10),
		LaunchDate:  l.LaunchDate.UTC().Format(DateTimeInputLayout),
		Status:      string(l.Status),
		Payload:     l.Payload,
		Orbit:       l.Orbit,
		Description: l.Description,
	}
}

// Clean parses ids and the launch date. Whether the referenced rocket and
// cosmodrome exist is checked by the service.
func (f LaunchForm) Clean() (models.Launch, FieldErrors) {
	errs := FieldErrors{}
	l := models.Launch{
		MissionName: f.MissionName,
		Status:      models.LaunchStatus(f.Status),
		Payload:     f.Payload,
		Orbit:       f.Orbit,
		Description: f.Description,
	}
	if l.Status == "" {
		l.Status = models.LaunchStatusPlanned
	}

	if f.Rocket != "" {
		id, err := strconv.ParseInt(f.Rocket, 10, 64)
		if err != nil || id <= 0 {
			errs.Add("rocket", MsgInvalidChoice)
		}
		l.RocketID = id
	}
	if f.Cosmodrome != "" {
		id, err := strconv.ParseInt(f.Cosmodrome, 10, 64)
		if err != nil || id <= 0 {
			errs.Add("cosmodrome", MsgInvalidChoice)
		}
		l.CosmodromeID = id
	}
	if f.LaunchDate != "" {
		var msg string
		if l.LaunchDate, msg = parseDateTime(f.LaunchDate); msg != "" {
			errs.Add("launch_date", msg)
		}
	}
	return l, errs
}

// SelectedRocket helps templates mark the chosen <option>.
func (f LaunchForm) SelectedRocket(id int64) bool {
	return f.Rocket == strconv.FormatInt(id, 10)
}

func (f LaunchForm) SelectedCosmodrome(id int64) bool {
	return f.Cosmodrome == strconv.FormatInt(id, 10)
}
