package cheader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vplot-go/pkg/vertex"
)

const sampleHeader = `
/* sample3d.h */

#define SAMPLE_H

static const float _sample_f_vertices[] = {
	-55.2518, 28.4173,
	-38.9928, 38.7770, /* smooth edge */
	-44.9027, 44.8841,
};

// bounding quad
const float quad_vertices[] = { 0, 0, 1, 1 };

static const int not_floats[] = { 1, 2 };
`

func TestNames(t *testing.T) {
	names := Names([]byte(sampleHeader))
	assert.Equal(t, []string{"_sample_f_vertices", "quad_vertices"}, names)
}

func TestExtract(t *testing.T) {
	seq, err := Extract([]byte(sampleHeader), "_sample_f_vertices")
	require.NoError(t, err)
	assert.Equal(t, vertex.Sequence{
		{X: -55.2518, Y: 28.4173},
		{X: -38.9928, Y: 38.7770},
		{X: -44.9027, Y: 44.8841},
	}, seq)
}

func TestExtractNonStatic(t *testing.T) {
	seq, err := Extract([]byte(sampleHeader), "quad_vertices")
	require.NoError(t, err)
	assert.Equal(t, vertex.Sequence{{X: 0, Y: 0}, {X: 1, Y: 1}}, seq)
}

func TestExtractUnknownName(t *testing.T) {
	_, err := Extract([]byte(sampleHeader), "missing_vertices")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing_vertices")
}

func TestExtractOddArray(t *testing.T) {
	src := []byte("const float broken[] = { 0, 0, 1 };")
	_, err := Extract(src, "broken")
	var perr *vertex.ParseError
	require.ErrorAs(t, err, &perr)
}
