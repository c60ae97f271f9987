package interngo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/interngo/internal/hash"
)

func sum64Of[T Value[T]](v T) uint64 {
	d := hash.AcquireDigest()
	defer hash.ReleaseDigest(d)
	v.WriteHash(d)
	return d.Sum64()
}

func TestValueAdapters_HashDeterminism(t *testing.T) {
	assert.Equal(t, sum64Of(String("alpha")), sum64Of(String("alpha")))
	assert.NotEqual(t, sum64Of(String("alpha")), sum64Of(String("beta")))

	assert.Equal(t, sum64Of(Bytes("alpha")), sum64Of(Bytes("alpha")))
	assert.Equal(t, sum64Of(String("alpha")), sum64Of(Bytes("alpha")),
		"same identity bytes hash the same; partitioning is what keeps the types apart")

	assert.Equal(t, sum64Of(Int64(-1)), sum64Of(Int64(-1)))
	assert.NotEqual(t, sum64Of(Int64(1)), sum64Of(Int64(2)))
	assert.Equal(t, sum64Of(Uint64(42)), sum64Of(Uint64(42)))
	assert.Equal(t, sum64Of(Float64(1.5)), sum64Of(Float64(1.5)))
}

func TestValueAdapters_Equal(t *testing.T) {
	assert.True(t, String("a").Equal("a"))
	assert.False(t, String("a").Equal("b"))

	assert.True(t, Bytes{1, 2}.Equal(Bytes{1, 2}))
	assert.False(t, Bytes{1, 2}.Equal(Bytes{1, 3}))
	assert.True(t, Bytes(nil).Equal(Bytes{}))

	assert.True(t, Int64(-7).Equal(-7))
	assert.True(t, Uint64(7).Equal(7))
	assert.True(t, Float64(1.5).Equal(1.5))
	assert.False(t, Float64(math.NaN()).Equal(Float64(math.NaN())))
}

func TestValueAdapters_SameBytesDifferentTypesStaySeparate(t *testing.T) {
	s := NewStore()

	hs := PoolOf[String](s).Intern("alpha")
	hb := PoolOf[Bytes](s).Intern(Bytes("alpha"))

	st := s.Stats()
	assert.Equal(t, 2, st.Partitions)
	assert.Equal(t, 2, st.Slots)

	assert.Equal(t, String("alpha"), hs.Value())
	assert.Equal(t, Bytes("alpha"), hb.Value())
}

func TestValueAdapters_NaNUnifiesByBitPattern(t *testing.T) {
	s := NewStore()
	p := PoolOf[Float64](s)

	// Equal is false for NaN, but dedup is by hash of the bit pattern:
	// both interns share a slot.
	a := p.Intern(Float64(math.NaN()))
	b := p.Intern(Float64(math.NaN()))

	require.Equal(t, a, b)
	assert.Equal(t, 1, p.Len())
	assert.True(t, math.IsNaN(float64(a.Value())))
}
