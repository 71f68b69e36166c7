package orient

import (
	"testing"

	"github.com/stretchr/testify/assert"

	geomkernel "github.com/wkoehler/geomrepair"
)

func TestFindSeedPicksMaxZFirstEncountered(t *testing.T) {
	points := newPointRecords(
		[]geomkernel.Vector{
			geomkernel.NewVector(0, 0, 1),
			geomkernel.NewVector(0, 0, 5),
			geomkernel.NewVector(0, 0, 5),
			geomkernel.NewVector(0, 0, 2),
		},
		[]geomkernel.Vector{
			geomkernel.NewVector(0, 0, 1),
			geomkernel.NewVector(0, 0, 1),
			geomkernel.NewVector(0, 0, 1),
			geomkernel.NewVector(0, 0, 1),
		},
	)

	seed := FindSeed(points)
	assert.Equal(t, 1, seed)
}

func TestFindSeedForcesNonNegativeZDot(t *testing.T) {
	points := newPointRecords(
		[]geomkernel.Vector{geomkernel.NewVector(0, 0, 9)},
		[]geomkernel.Vector{geomkernel.NewVector(0, 0, -1)},
	)

	seed := FindSeed(points)
	assert.Equal(t, 0, seed)
	assert.Equal(t, geomkernel.NewVector(0, 0, 1), points[0].Normal())
}
