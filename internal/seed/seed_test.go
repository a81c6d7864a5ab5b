package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rockethub/internal/http-api/models"
)

func TestDemo(t *testing.T) {
	ds, err := Demo()
	require.NoError(t, err)

	assert.NotEmpty(t, ds.Rockets)
	assert.NotEmpty(t, ds.Cosmodromes)
	assert.NotEmpty(t, ds.Launches)

	var starlink *Launch
	for i := range ds.Launches {
		if ds.Launches[i].MissionName == "Starlink-1" {
			starlink = &ds.Launches[i]
		}
	}
	require.NotNil(t, starlink)
	assert.Equal(t, "Falcon 9", starlink.Rocket)
	assert.Equal(t, "Cape Canaveral", starlink.Cosmodrome)
}

func TestLoad_Defaults(t *testing.T) {
	ds, err := Load(strings.NewReader(`{
		"rockets": [{"id": 42, "name": "Electron", "manufacturer": "Rocket Lab", "country": "New Zealand"}],
		"cosmodromes": [{"name": "Mahia", "country": "New Zealand"}],
		"launches": [{"mission_name": "It's a Test", "rocket": "Electron", "cosmodrome": "Mahia", "launch_date": "2017-05-25T04:20:00Z"}]
	}`))
	require.NoError(t, err)

	r := ds.Rockets[0]
	assert.Zero(t, r.ID, "ids come from the database")
	assert.Equal(t, models.RocketTypeOrbital, r.RocketType)
	assert.Equal(t, models.RocketStatusActive, r.Status)
	assert.Equal(t, models.DefaultRocketStages, r.Stages)
	assert.Equal(t, models.LaunchStatusPlanned, ds.Launches[0].Status)

	require.NotNil(t, ds.Cosmodromes[0].IsActive)
	assert.True(t, *ds.Cosmodromes[0].IsActive, "omitted is_active means active")
	assert.True(t, ds.Cosmodromes[0].model().IsActive)
}

func TestLoad_KeepsInactiveCosmodrome(t *testing.T) {
	ds, err := Load(strings.NewReader(`{"cosmodromes": [{"name": "Vandenberg SLC-3", "country": "USA", "is_active": false}]}`))
	require.NoError(t, err)

	assert.False(t, ds.Cosmodromes[0].model().IsActive)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{
			name:    "Unknown field",
			json:    `{"rockets": [{"name": "X", "manufacturer": "Y", "country": "Z", "colour": "white"}]}`,
			wantErr: "decode dataset",
		},
		{
			name:    "Missing manufacturer",
			json:    `{"rockets": [{"name": "X", "country": "Z"}]}`,
			wantErr: "rocket #1",
		},
		{
			name:    "Bad rocket type",
			json:    `{"rockets": [{"name": "X", "manufacturer": "Y", "country": "Z", "rocket_type": "balloon"}]}`,
			wantErr: `unknown rocket_type "balloon"`,
		},
		{
			name:    "Duplicate cosmodrome",
			json:    `{"cosmodromes": [{"name": "A", "country": "B"}, {"name": "A", "country": "C"}]}`,
			wantErr: "duplicate name",
		},
		{
			name: "Dangling rocket",
			json: `{"cosmodromes": [{"name": "A", "country": "B"}],
				"launches": [{"mission_name": "M", "rocket": "Ghost", "cosmodrome": "A", "launch_date": "2020-01-01T00:00:00Z"}]}`,
			wantErr: `unknown rocket "Ghost"`,
		},
		{
			name: "Missing date",
			json: `{"rockets": [{"name": "X", "manufacturer": "Y", "country": "Z"}], "cosmodromes": [{"name": "A", "country": "B"}],
				"launches": [{"mission_name": "M", "rocket": "X", "cosmodrome": "A"}]}`,
			wantErr: "launch_date is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.json))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
