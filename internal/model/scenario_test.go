package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validScenario() Scenario {
	s := NewScenario("test room", NewRect(0, 0, 12, 10))
	s.Doors = []Door{{X: 5, Z: 0}, {X: 0, Z: 4}}
	s.FootprintSize = 4
	return s
}

func TestNewScenario_Defaults(t *testing.T) {
	s := NewScenario("ward 7", NewRect(0, 0, 10, 10))

	assert.Len(t, s.ID, 8)
	assert.Equal(t, []int{3, 4}, s.AllowedWidths)
	assert.Equal(t, []int{4, 5}, s.AllowedDepths)
}

func TestScenario_Validate(t *testing.T) {
	assert.NoError(t, validScenario().Validate())

	s := validScenario()
	s.Room = NewRect(0, 0, 2, 10)
	assert.ErrorContains(t, s.Validate(), "no interior")

	s = validScenario()
	s.Doors = []Door{{X: 5, Z: 5}}
	assert.ErrorContains(t, s.Validate(), "perimeter")

	s = validScenario()
	s.AllowedWidths = nil
	assert.ErrorContains(t, s.Validate(), "width set is empty")

	s = validScenario()
	s.AllowedDepths = []int{4, 0}
	assert.ErrorContains(t, s.Validate(), "not positive")

	s = validScenario()
	s.FootprintSize = 50
	assert.ErrorContains(t, s.Validate(), "exceeds")
}

func TestScenario_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	want := validScenario()
	require.NoError(t, want.Save(path))

	got, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
