package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book-expert/pdf-tools/internal/convert"
)

func TestParseRotationSpecs(t *testing.T) {
	t.Parallel()

	specs, err := convert.ParseRotationSpecs([]string{"0,90", "2, 180", "1,-45.5"})
	require.NoError(t, err)
	require.Len(t, specs, 3)

	assert.Equal(t, convert.RotationSpec{Index: 0, Angle: 90}, specs[0])
	assert.Equal(t, convert.RotationSpec{Index: 2, Angle: 180}, specs[1])
	assert.Equal(t, convert.RotationSpec{Index: 1, Angle: -45.5}, specs[2])
}

func TestParseRotationSpecs_Empty(t *testing.T) {
	t.Parallel()

	specs, err := convert.ParseRotationSpecs(nil)
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestParseRotationSpecs_Malformed(t *testing.T) {
	t.Parallel()

	cases := []string{"1", "1,2,3", "a,90", "1,fast"}
	for _, value := range cases {
		_, err := convert.ParseRotationSpecs([]string{value})
		require.ErrorIs(t, err, convert.ErrInvalidRotation, value)
	}
}

func TestRotationByIndex_LastSpecWins(t *testing.T) {
	t.Parallel()

	specs := []convert.RotationSpec{
		{Index: 1, Angle: 90},
		{Index: 1, Angle: 270},
	}

	angles, err := convert.RotationByIndexForTest(specs, 3)
	require.NoError(t, err)
	assert.InDelta(t, 270.0, angles[1], 0.0001)
}

func TestRotationByIndex_OutOfRange(t *testing.T) {
	t.Parallel()

	specs := []convert.RotationSpec{{Index: 5, Angle: 90}}

	_, err := convert.RotationByIndexForTest(specs, 3)
	require.ErrorIs(t, err, convert.ErrInvalidRotation)

	_, err = convert.RotationByIndexForTest(
		[]convert.RotationSpec{{Index: -1, Angle: 90}},
		3,
	)
	require.ErrorIs(t, err, convert.ErrInvalidRotation)
}
