package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Falcon", "%Falcon%"},
		{"100%", `%100\%%`},
		{"LC_39A", `%LC\_39A%`},
		{`C:\path`, `%C:\\path%`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, containsPattern(tt.in))
		})
	}
}

func TestAnyILike(t *testing.T) {
	where, args := anyILike([]string{"name", "country"}, "%x%")

	assert.Equal(t, "(name ILIKE ? OR country ILIKE ?)", where)
	assert.Equal(t, []interface{}{"%x%", "%x%"}, args)
}

func TestOrderBy_RejectsUnknownField(t *testing.T) {
	_, err := orderBy(nil, rocketSortColumns, "rockets", "password", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"password"`)
}

func TestSortColumnsCoverAllowList(t *testing.T) {
	for _, field := range []string{"name", "manufacturer", "country", "rocket_type", "status"} {
		assert.Contains(t, rocketSortColumns, field)
	}
	for _, field := range []string{"name", "country", "location", "founded_year", "is_active"} {
		assert.Contains(t, cosmodromeSortColumns, field)
	}
	for _, field := range []string{"mission_name", "rocket__name", "cosmodrome__name", "launch_date", "status"} {
		assert.Contains(t, launchSortColumns, field)
	}
}
