package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailylog/dailylog/pkg/facility"
	"github.com/dailylog/dailylog/pkg/log"
)

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		Folder:       dir,
		MinimumLevel: "error",
		Facilities: []FacilityConfig{
			{Name: "daily", Type: TypeFile},
			{Name: "events", Type: TypeJSON, MinimumLevel: "info"},
			{Name: "console", Type: TypePrinter},
		},
	}
	require.NoError(t, cfg.Validate())

	var out bytes.Buffer
	built, names, err := cfg.Build(WithOutput(&out))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(built) })

	assert.Equal(t, []string{"daily", "events", "console"}, names)

	daily, ok := built["daily"].(*facility.FileFacility)
	require.True(t, ok)
	assert.Equal(t, log.LevelError, daily.MinimumLevel())
	assert.Equal(t, dir, daily.Folder())

	events, ok := built["events"].(*facility.JSONFacility)
	require.True(t, ok)
	assert.Equal(t, log.LevelInfo, events.MinimumLevel())

	built["console"].Log("app", log.LevelError, log.NewMessage("shown"))
	built["console"].Log("app", log.LevelWarning, log.NewMessage("hidden"))
	assert.Equal(t, "[app] 🐞 ERROR: shown\n", out.String())
}

func TestBuildFailureClosesBuilt(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		Folder:       dir,
		MinimumLevel: "warning",
		Facilities: []FacilityConfig{
			{Name: "daily", Type: TypeFile},
			{Name: "broken", Type: FacilityType("syslog")},
		},
	}

	built, names, err := cfg.Build()
	require.Error(t, err)
	assert.Nil(t, built)
	assert.Nil(t, names)
	assert.Contains(t, err.Error(), `facility "broken"`)
}

func TestRegister(t *testing.T) {
	cfg, err := Parse([]byte("facilities:\n  - type: printer\n  - name: other\n    type: printer\n"), FormatYAML)
	require.NoError(t, err)

	var out bytes.Buffer
	reg := log.NewRegistry()
	names, err := cfg.Register(reg, WithOutput(&out))
	require.NoError(t, err)
	assert.Equal(t, []string{"printer", "other"}, names)
	assert.Equal(t, []string{"printer", "other"}, reg.Names())

	logger := log.New("svc", log.WithRegistry(reg), log.WithScope(&log.InlineScope{}))
	logger.Error("twice")
	assert.Equal(t, "[svc] 🐞 ERROR: twice\n[svc] 🐞 ERROR: twice\n", out.String())
}

func TestRegisterNameTaken(t *testing.T) {
	reg := log.NewRegistry()
	reg.Register("other", log.NoopFacility{})

	cfg := &Config{
		MinimumLevel: "warning",
		Facilities: []FacilityConfig{
			{Name: "console", Type: TypePrinter},
			{Name: "other", Type: TypePrinter},
		},
	}

	names, err := cfg.Register(reg, WithOutput(&bytes.Buffer{}))
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, []string{"console"}, names)
	assert.Equal(t, []string{"other", "console"}, reg.Names())
}

func TestBuildAppliesFacilityOptions(t *testing.T) {
	cfg := &Config{
		Folder:       t.TempDir(),
		MinimumLevel: "warning",
		Facilities:   []FacilityConfig{{Name: "daily", Type: TypeFile}},
	}

	built, _, err := cfg.Build(WithFacilityOptions(facility.WithMinimumLevel(log.LevelCrash)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(built) })

	assert.Equal(t, log.LevelCrash, built["daily"].(*facility.FileFacility).MinimumLevel())
}
