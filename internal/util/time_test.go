package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = LoadLocation("UTC")
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = LoadLocation("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestInitializeTimeProvider(t *testing.T) {
	require.NoError(t, InitializeTimeProvider("UTC"))
	tp := GetTimeProvider()
	assert.Equal(t, "UTC", tp.Location().String())

	ts := time.Date(2024, 1, 1, 10, 0, 0, 0, time.FixedZone("UTC+2", 7200))
	assert.Equal(t, "08:00:00", tp.Format(ts, "15:04:05"))

	// a bad zone leaves the previous provider untouched
	assert.Error(t, InitializeTimeProvider("Nowhere/Invalid"))
	assert.Equal(t, "UTC", GetTimeProvider().Location().String())
}
