package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaccardScorer_Identity(t *testing.T) {
	scorer := NewJaccardScorer()

	assert.Equal(t, 100, scorer.Score("the quick brown fox", "the quick brown fox"))
}

func TestJaccardScorer_OrderInsensitive(t *testing.T) {
	scorer := NewJaccardScorer()

	assert.Equal(t, 100, scorer.Score("alpha beta gamma", "gamma alpha beta"))
}

func TestJaccardScorer_CaseInsensitive(t *testing.T) {
	scorer := NewJaccardScorer()

	assert.Equal(t, 100, scorer.Score("Hello World", "hello world"))
}

func TestJaccardScorer_Disjoint(t *testing.T) {
	scorer := NewJaccardScorer()

	assert.Equal(t, 0, scorer.Score("one two", "three four"))
}

func TestJaccardScorer_PartialOverlap(t *testing.T) {
	scorer := NewJaccardScorer()

	// intersection {b, c} = 2, union {a, b, c, d} = 4
	assert.Equal(t, 50, scorer.Score("a b c", "b c d"))
}

func TestJaccardScorer_BothEmpty(t *testing.T) {
	scorer := NewJaccardScorer()

	assert.Equal(t, 100, scorer.Score("", ""))
}

func TestJaccardScorer_OneEmpty(t *testing.T) {
	scorer := NewJaccardScorer()

	assert.Equal(t, 0, scorer.Score("", "content"))
	assert.Equal(t, 0, scorer.Score("content", ""))
}

func TestJaccardScorer_Bounds(t *testing.T) {
	scorer := NewJaccardScorer()
	cases := [][2]string{
		{"a", "a b c d e f g h"},
		{"x y z", "x"},
		{"", "a"},
		{"same", "same"},
	}

	for _, c := range cases {
		score := scorer.Score(c[0], c[1])
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}
