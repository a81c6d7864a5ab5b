package dto

import (
	"strconv"

	"rockethub/internal/http-api/models"
)

type CosmodromeForm struct {
	Name        string `form:"name" binding:"required,max=200"`
	Country     string `form:"country" binding:"required,max=100"`
	Location    string `form:"location" binding:"max=300"`
	FoundedYear string `form:"founded_year"`
	Description string `form:"description"`
	IsActive    string `form:"is_active"`
}

func NewCosmodromeForm() CosmodromeForm {
	return CosmodromeForm{IsActive: "true"}
}

func CosmodromeFormFromModel(c models.Cosmodrome) CosmodromeForm {
	return CosmodromeForm{
		Name:        c.Name,
		Country:     c.Country,
		Location:    c.Location,
		FoundedYear: formatOptionalInt(c.FoundedYear),
		Description: c.Description,
		IsActive:    strconv.FormatBool(c.IsActive),
	}
}

// Checked reports whether the is_active checkbox should render ticked.
func (f CosmodromeForm) Checked() bool {
	return parseCheckbox(f.IsActive)
}

func (f CosmodromeForm) Clean() (models.Cosmodrome, FieldErrors) {
	errs := FieldErrors{}
	c := models.Cosmodrome{
		Name:        f.Name,
		Country:     f.Country,
		Location:    f.Location,
		Description: f.Description,
		IsActive:    parseCheckbox(f.IsActive),
	}
	var msg string
	if c.FoundedYear, msg = parseOptionalInt(f.FoundedYear); msg != "" {
		errs.Add("founded_year", msg)
	}
	return c, errs
}
