package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pfeifer.dev/soard/params"
)

func TestSaveLoadDefinition(t *testing.T) {
	old := params.ParamsPath
	params.ParamsPath = t.TempDir()
	t.Cleanup(func() { params.ParamsPath = old })

	store := NewStore("", nil)
	assert.Error(t, LoadInto(store, nil))

	lat, lon := 45.3, 7.1
	def := Definition{
		Name: "out and return",
		Sectors: []SectorDefinition{
			{Waypoint: "HOME", Radius: 3000, Kind: Line},
			{Name: "TP", Latitude: &lat, Longitude: &lon, Radius: 500},
			{Waypoint: "HOME", Radius: 3000, Kind: Line},
		},
	}
	require.NoError(t, SaveDefinition(def))

	loaded, err := LoadDefinition()
	require.NoError(t, err)
	assert.Equal(t, def, loaded)

	require.NoError(t, LoadInto(store, fakeResolver{"HOME": origin}))
	assert.Equal(t, "out and return", store.Name())
	assert.Equal(t, 3, store.Len())
	assert.Equal(t, 0, store.ActiveIndex())
	sectors := store.Sectors()
	assert.Equal(t, "HOME", sectors[2].Name)
	assert.Equal(t, Line, sectors[2].Kind)

	require.NoError(t, ClearDefinition())
	_, err = LoadDefinition()
	assert.Error(t, err)
}
