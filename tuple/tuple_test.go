package tuple

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPair(t *testing.T) {
	p := Make(1, "a")

	first, second := p.Unpack()
	assert.Equal(t, 1, first)
	assert.Equal(t, "a", second)
	assert.Equal(t, Make("a", 1), p.Swap())
	assert.Equal(t, "(1, a)", p.String())
}

func TestPairMapping(t *testing.T) {
	p := Make(1, 2)

	assert.Equal(t, Make("1", 2), MapFirst[int](strconv.Itoa)(p))
	assert.Equal(t, Make(1, "2"), MapSecond[int](strconv.Itoa)(p))
	assert.Equal(t, Make("1", 4), Bimap(strconv.Itoa, func(n int) int { return n * 2 })(p))
}
