package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vplot-go/pkg/vertex"
)

func TestOfDeterministic(t *testing.T) {
	seq := vertex.Sequence{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4}}
	assert.Equal(t, Of(seq), Of(seq))
	assert.Equal(t, Of(seq).Haiku(), Of(seq).Haiku())
}

func TestOfOrderSensitive(t *testing.T) {
	a := Of(vertex.Sequence{{X: 0, Y: 0}, {X: 1, Y: 1}})
	b := Of(vertex.Sequence{{X: 1, Y: 1}, {X: 0, Y: 0}})
	assert.NotEqual(t, a.Sum, b.Sum)
}

func TestOfDistinguishesData(t *testing.T) {
	a := Of(vertex.Sequence{{X: 0, Y: 0}})
	b := Of(vertex.Sequence{{X: 0, Y: 1}})
	assert.NotEqual(t, a.Sum, b.Sum)
}

func TestHaiku(t *testing.T) {
	fg := Of(vertex.Sequence{{X: 2, Y: 4}})
	require.NotEmpty(t, fg.Haiku())
	assert.Equal(t, fg.Haiku(), fg.String())
	assert.True(t, fg.MatchesHaiku(fg.Haiku()))
	assert.False(t, fg.MatchesHaiku("blue-frog"))
}
