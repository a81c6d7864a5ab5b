// Package seed loads rockets, cosmodromes and launches from a JSON fixture
// into the database in a single transaction.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rockethub/internal/http-api/models"
)

//go:embed demo.json
var demoData []byte

// Launch references its rocket and cosmodrome by name so fixtures stay
// independent of database ids.
type Launch struct {
	MissionName string              `json:"mission_name"`
	Rocket      string              `json:"rocket"`
	Cosmodrome  string              `json:"cosmodrome"`
	LaunchDate  time.Time           `json:"launch_date"`
	Status      models.LaunchStatus `json:"status"`
	Payload     string              `json:"payload"`
	Orbit       string              `json:"orbit"`
	Description string              `json:"description"`
}

// Cosmodrome keeps is_active optional so an omitted flag can default to true.
type Cosmodrome struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	Location    string `json:"location"`
	FoundedYear *int   `json:"founded_year"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

func (c Cosmodrome) model() models.Cosmodrome {
	return models.Cosmodrome{
		Name:        c.Name,
		Country:     c.Country,
		Location:    c.Location,
		FoundedYear: c.FoundedYear,
		Description: c.Description,
		IsActive:    c.IsActive == nil || *c.IsActive,
	}
}

type Dataset struct {
	Rockets     []models.Rocket `json:"rockets"`
	Cosmodromes []Cosmodrome    `json:"cosmodromes"`
	Launches    []Launch        `json:"launches"`
}

// Summary counts what Import wrote.
type Summary struct {
	Rockets     int
	Cosmodromes int
	Launches    int
}

// Demo returns the built-in demo dataset.
func Demo() (*Dataset, error) {
	return Load(bytes.NewReader(demoData))
}

// Load decodes and checks a dataset. Unknown JSON fields are rejected.
func Load(r io.Reader) (*Dataset, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	ds.applyDefaults()
	if err := ds.Check(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (ds *Dataset) applyDefaults() {
	for i := range ds.Rockets {
		r := &ds.Rockets[i]
		r.ID = 0
		if r.RocketType == "" {
			r.RocketType = models.RocketTypeOrbital
		}
		if r.Status == "" {
			r.Status = models.RocketStatusActive
		}
		if r.Stages == 0 {
			r.Stages = models.DefaultRocketStages
		}
	}
	for i := range ds.Cosmodromes {
		if ds.Cosmodromes[i].IsActive == nil {
			active := true
			ds.Cosmodromes[i].IsActive = &active
		}
	}
	for i := range ds.Launches {
		if ds.Launches[i].Status == "" {
			ds.Launches[i].Status = models.LaunchStatusPlanned
		}
	}
}

// Check reports the first problem that would make Import fail: missing
// required values, unknown enum values, duplicate names or dangling references.
func (ds *Dataset) Check() error {
	rockets := make(map[string]bool, len(ds.Rockets))
	for i, r := range ds.Rockets {
		switch {
		case r.Name == "" || r.Manufacturer == "" || r.Country == "":
			return fmt.Errorf("rocket #%d: name, manufacturer and country are required", i+1)
		case !models.IsChoice(models.RocketTypes, string(r.RocketType)):
			return fmt.Errorf("rocket %q: unknown rocket_type %q", r.Name, r.RocketType)
		case !models.IsChoice(models.RocketStatuses, string(r.Status)):
			return fmt.Errorf("rocket %q: unknown status %q", r.Name, r.Status)
		case rockets[r.Name]:
			return fmt.Errorf("rocket %q: duplicate name", r.Name)
		}
		rockets[r.Name] = true
	}

	cosmodromes := make(map[string]bool, len(ds.Cosmodromes))
	for i, c := range ds.Cosmodromes {
		switch {
		case c.Name == "" || c.Country == "":
			return fmt.Errorf("cosmodrome #%d: name and country are required", i+1)
		case cosmodromes[c.Name]:
			return fmt.Errorf("cosmodrome %q: duplicate name", c.Name)
		}
		cosmodromes[c.Name] = true
	}

	for i, l := range ds.Launches {
		switch {
		case l.MissionName == "":
			return fmt.Errorf("launch #%d: mission_name is required", i+1)
		case l.LaunchDate.IsZero():
			return fmt.Errorf("launch %q: launch_date is required", l.MissionName)
		case !models.IsChoice(models.LaunchStatuses, string(l.Status)):
			return fmt.Errorf("launch %q: unknown status %q", l.MissionName, l.Status)
		case !rockets[l.Rocket]:
			return fmt.Errorf("launch %q: unknown rocket %q", l.MissionName, l.Rocket)
		case !cosmodromes[l.Cosmodrome]:
			return fmt.Errorf("launch %q: unknown cosmodrome %q", l.MissionName, l.Cosmodrome)
		}
	}
	return nil
}

// Import writes ds in one transaction. With reset, existing rows of all three
// tables are removed first.
func Import(ctx context.Context, db *gorm.DB, ds *Dataset, reset bool, log *zap.Logger) (Summary, error) {
	var sum Summary
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if reset {
			if err := tx.Exec("TRUNCATE launches, rockets, cosmodromes RESTART IDENTITY CASCADE").Error; err != nil {
				return fmt.Errorf("reset tables: %w", err)
			}
			log.Info("existing records removed")
		}

		rocketIDs := make(map[string]int64, len(ds.Rockets))
		for i := range ds.Rockets {
			r := ds.Rockets[i]
			if err := tx.Create(&r).Error; err != nil {
				return fmt.Errorf("create rocket %q: %w", r.Name, err)
			}
			rocketIDs[r.Name] = r.ID
			log.Debug("rocket imported", zap.String("name", r.Name), zap.Int64("id", r.ID))
		}
		sum.Rockets = len(rocketIDs)

		cosmodromeIDs := make(map[string]int64, len(ds.Cosmodromes))
		for _, sc := range ds.Cosmodromes {
			c := sc.model()
			if err := tx.Create(&c).Error; err != nil {
				return fmt.Errorf("create cosmodrome %q: %w", c.Name, err)
			}
			cosmodromeIDs[c.Name] = c.ID
			log.Debug("cosmodrome imported", zap.String("name", c.Name), zap.Int64("id", c.ID))
		}
		sum.Cosmodromes = len(cosmodromeIDs)

		for _, sl := range ds.Launches {
			l := models.Launch{
				MissionName:  sl.MissionName,
				RocketID:     rocketIDs[sl.Rocket],
				CosmodromeID: cosmodromeIDs[sl.Cosmodrome],
				LaunchDate:   sl.LaunchDate.UTC(),
				Status:       sl.Status,
				Payload:      sl.Payload,
				Orbit:        sl.Orbit,
				Description:  sl.Description,
			}
			if err := tx.Omit(clause.Associations).Create(&l).Error; err != nil {
				return fmt.Errorf("create launch %q: %w", l.MissionName, err)
			}
			sum.Launches++
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return sum, nil
}
