package ga_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotour/ga"
)

func TestValidateTour(t *testing.T) {
	cases := []struct {
		name string
		tour ga.Tour
		n    int
		want error
	}{
		{"ok", ga.Tour{0, 2, 1, 3}, 4, nil},
		{"single", ga.Tour{0}, 1, nil},
		{"empty set", ga.Tour{}, 0, ga.ErrNoLocations},
		{"short", ga.Tour{0, 1}, 3, ga.ErrTourLength},
		{"origin", ga.Tour{1, 0, 2}, 3, ga.ErrNotOrigin},
		{"duplicate", ga.Tour{0, 1, 1}, 3, ga.ErrNotPermutation},
		{"range", ga.Tour{0, 1, 3}, 3, ga.ErrNotPermutation},
		{"negative", ga.Tour{0, -1, 2}, 3, ga.ErrNotPermutation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ga.ValidateTour(tc.tour, tc.n)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, ga.ErrInvalidInput)
		})
	}
}

func TestTour_CloneEqualReversed(t *testing.T) {
	tour := ga.Tour{0, 1, 2, 3, 4}
	c := tour.Clone()
	require.True(t, c.Equal(tour))
	c[1] = 9
	assert.Equal(t, 1, tour[1])
	assert.False(t, c.Equal(tour))
	assert.False(t, tour.Equal(tour[:3]))

	assert.Equal(t, ga.Tour{0, 4, 3, 2, 1}, tour.Reversed())
	assert.Equal(t, ga.Tour{0, 1}, ga.Tour{0, 1}.Reversed())
	assert.Nil(t, ga.Tour(nil).Clone())
}

func TestTour_Names(t *testing.T) {
	names := ga.Tour{0, 3, 7}.Names(fourCities())
	assert.Equal(t, []string{"LAX", "C", "?"}, names)
}
