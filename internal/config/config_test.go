package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTOML = `
[server]
http_port = 9090

[logs]
level = "debug"

[storage]
file = "data/appointments.json"

[shop]
name = "Barbearia Premium"
whatsapp = "5511999999999"

[schedule]
open_hour = 8
close_hour = 18
slot_interval_minutes = 30
closure_weekday = 0
short_day_weekday = 6
short_day_close_hour = 14
booking_window_days = 30

[catalog.staff.carlos]
name = "Carlos Santos"

[catalog.services.corte]
name = "Corte Masculino"
price = 35.0
duration_minutes = 30
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validTOML))

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "Barbearia Premium", cfg.Shop.Name)
	assert.Equal(t, 8, cfg.Schedule.OpenHour)
	assert.Equal(t, int(time.Sunday), cfg.Schedule.ClosureWeekday)
	assert.Len(t, cfg.Catalog.Staff, 1)
	assert.Len(t, cfg.Catalog.Services, 1)
}

func TestLoadAppliesDefaults(t *testing.T) {
	// Sections the file omits keep their defaults.
	cfg, err := Load(writeConfig(t, validTOML))

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "open hour after close hour",
			content: `
[schedule]
open_hour = 18
close_hour = 8
[catalog.staff.carlos]
name = "Carlos"
[catalog.services.corte]
name = "Corte"
duration_minutes = 30
`,
		},
		{
			name: "zero slot interval",
			content: `
[schedule]
slot_interval_minutes = 0
[catalog.staff.carlos]
name = "Carlos"
[catalog.services.corte]
name = "Corte"
duration_minutes = 30
`,
		},
		{
			name: "closure weekday out of range",
			content: `
[schedule]
closure_weekday = 7
[catalog.staff.carlos]
name = "Carlos"
[catalog.services.corte]
name = "Corte"
duration_minutes = 30
`,
		},
		{
			name: "short day closes before opening",
			content: `
[schedule]
short_day_close_hour = 7
[catalog.staff.carlos]
name = "Carlos"
[catalog.services.corte]
name = "Corte"
duration_minutes = 30
`,
		},
		{
			name:    "no staff",
			content: `[catalog.services.corte]` + "\n" + `name = "Corte"` + "\n" + `duration_minutes = 30`,
		},
		{
			name:    "no services",
			content: `[catalog.staff.carlos]` + "\n" + `name = "Carlos"`,
		},
		{
			name: "staff without name",
			content: `
[catalog.staff.carlos]
phone = "(11) 99999-0000"
[catalog.services.corte]
name = "Corte"
duration_minutes = 30
`,
		},
		{
			name: "service with zero duration",
			content: `
[catalog.staff.carlos]
name = "Carlos"
[catalog.services.corte]
name = "Corte"
duration_minutes = 0
`,
		},
		{
			name: "empty storage file",
			content: `
[storage]
file = ""
[catalog.staff.carlos]
name = "Carlos"
[catalog.services.corte]
name = "Corte"
duration_minutes = 30
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestBuildCatalog(t *testing.T) {
	cfg, err := Load(writeConfig(t, validTOML))
	require.NoError(t, err)

	catalog := cfg.BuildCatalog()

	staff, ok := catalog.StaffByID("carlos")
	require.True(t, ok)
	assert.Equal(t, "carlos", staff.ID)
	assert.Equal(t, "Carlos Santos", staff.Name)

	service, ok := catalog.ServiceByID("corte")
	require.True(t, ok)
	assert.Equal(t, 35.0, service.Price)
	assert.Equal(t, 30, service.DurationMinutes)

	_, ok = catalog.StaffByID("ninguém")
	assert.False(t, ok)
}
