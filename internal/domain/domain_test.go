package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatBarWidth(t *testing.T) {
	tests := []struct {
		value int
		want  float64
	}{
		{0, 0},
		{255, 100},
		{51, 20},
		{-10, 0},
		{300, 100},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, StatBarWidth(tt.value), 1e-9, "value %d", tt.value)
	}

	assert.InDelta(t, 45.0/255*100, Stat{Name: "hp", Value: 45}.BarWidth(), 1e-9)
}

func TestStatLabel(t *testing.T) {
	labels := map[string]string{
		"hp":              "HP",
		"attack":          "Attack",
		"defense":         "Defense",
		"special-attack":  "Sp. Attack",
		"special-defense": "Sp. Defense",
		"speed":           "Speed",
		"accuracy":        "accuracy",
	}
	for name, want := range labels {
		assert.Equal(t, want, Stat{Name: name}.Label())
	}
}

func TestSummaryNumber(t *testing.T) {
	assert.Equal(t, "#001", Summary{ID: 1}.Number())
	assert.Equal(t, "#025", Summary{ID: 25}.Number())
	assert.Equal(t, "#151", Summary{ID: 151}.Number())
	assert.Equal(t, "#1010", Summary{ID: 1010}.Number())
}

func TestDetailMeasurements(t *testing.T) {
	d := Detail{Height: 4, Weight: 60}
	assert.InDelta(t, 0.4, d.HeightMeters(), 1e-9)
	assert.InDelta(t, 6.0, d.WeightKilograms(), 1e-9)
}

func TestTypeColor(t *testing.T) {
	assert.Equal(t, "#F08030", TypeFire.Color())
	assert.Equal(t, "#EE99AC", TypeFairy.Color())
	assert.Equal(t, "#68A090", TypeName("shadow").Color())
	assert.Len(t, Types, 18)
	assert.True(t, TypeGhost.IsKnown())
	assert.False(t, TypeName("shadow").IsKnown())
}

func TestQueryToggleType(t *testing.T) {
	q := Query{}.ToggleType(TypeFire)
	assert.Equal(t, TypeFire, q.Type)

	q = q.ToggleType(TypeWater)
	assert.Equal(t, TypeWater, q.Type)

	q = q.ToggleType(TypeWater)
	assert.Equal(t, TypeName(""), q.Type)
}

func TestParseSort(t *testing.T) {
	key, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortNone, key)

	key, err = ParseSortKey(" Name ")
	require.NoError(t, err)
	assert.Equal(t, SortByName, key)

	_, err = ParseSortKey("weight")
	assert.Error(t, err)

	desc, err := ParseSortOrder("DESC")
	require.NoError(t, err)
	assert.True(t, desc)

	_, err = ParseSortOrder("sideways")
	assert.Error(t, err)
}
