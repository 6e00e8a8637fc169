package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType_Size(t *testing.T) {
	assert.Equal(t, 1, Int8.Size())
	assert.Equal(t, 2, Int16.Size())
	assert.Equal(t, 4, Int32.Size())
	assert.Equal(t, 8, Int64.Size())
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Float64.Size())
	assert.Equal(t, 0, NotSet.Size())
}

func TestType_Normalizer(t *testing.T) {
	assert.Equal(t, 128.0, Int8.Normalizer())
	assert.Equal(t, 32768.0, Int16.Normalizer())
	assert.Equal(t, 2147483648.0, Int32.Normalizer())
	assert.Equal(t, 9223372036854775808.0, Int64.Normalizer())
	assert.Equal(t, 1.0, Float32.Normalizer())
	assert.Equal(t, 1.0, Float64.Normalizer())
	assert.Equal(t, 1.0, NotSet.Normalizer())
}

func TestInspect(t *testing.T) {
	typ, n, ok := Inspect([]int16{1, 2, 3})
	require.True(t, ok)
	assert.Equal(t, Int16, typ)
	assert.Equal(t, 3, n)

	typ, n, ok = Inspect([]float64{})
	require.True(t, ok)
	assert.Equal(t, Float64, typ)
	assert.Equal(t, 0, n)

	_, _, ok = Inspect([]string{"nope"})
	assert.False(t, ok)
	_, _, ok = Inspect(nil)
	assert.False(t, ok)
	_, _, ok = Inspect(42)
	assert.False(t, ok)
}

func TestIsNil(t *testing.T) {
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil([]int16(nil)))
	assert.True(t, IsNil([]float32(nil)))
	assert.False(t, IsNil([]int16{}))
	assert.False(t, IsNil([]int16{1}))
	assert.False(t, IsNil("not samples"))
}

func TestClone(t *testing.T) {
	src := []int32{1, 2, 3}
	cloned := Clone(src).([]int32)
	require.Equal(t, src, cloned)

	src[0] = 99
	assert.Equal(t, int32(1), cloned[0], "clone should not share backing memory")

	assert.Nil(t, Clone("not samples"))
}

func TestBuffer_ReadBack(t *testing.T) {
	b := New(Int16, 4)
	require.NotNil(t, b)
	assert.Equal(t, Int16, b.Type())
	assert.Equal(t, 4, b.Len())

	b.CopyFrom([]int16{-3, 7, 100, -32768}, 0, 0, 4)
	assert.Equal(t, -3.0, b.At(0))
	assert.Equal(t, 7.0, b.At(1))
	assert.Equal(t, 100.0, b.At(2))
	assert.Equal(t, -32768.0, b.At(3))
}

func TestBuffer_CopyOffsets(t *testing.T) {
	b := New(Float64, 6)
	b.CopyFrom([]float64{1, 2, 3, 4}, 2, 1, 3)

	assert.Equal(t, 0.0, b.At(0))
	assert.Equal(t, 0.0, b.At(1))
	assert.Equal(t, 2.0, b.At(2))
	assert.Equal(t, 3.0, b.At(3))
	assert.Equal(t, 4.0, b.At(4))
	assert.Equal(t, 0.0, b.At(5))
}

func TestBuffer_Zero(t *testing.T) {
	b := New(Int8, 4)
	b.CopyFrom([]int8{1, 2, 3, 4}, 0, 0, 4)
	b.Zero(1, 3)

	assert.Equal(t, 1.0, b.At(0))
	assert.Equal(t, 0.0, b.At(1))
	assert.Equal(t, 0.0, b.At(2))
	assert.Equal(t, 4.0, b.At(3))
}

func TestBuffer_AbsDiff(t *testing.T) {
	b := New(Int16, 3)
	b.CopyFrom([]int16{10, -20, 10}, 0, 0, 3)
	assert.Equal(t, 30.0, b.AbsDiff(0, 1))
	assert.Equal(t, 30.0, b.AbsDiff(1, 0))
	assert.Equal(t, 0.0, b.AbsDiff(0, 2))

	f := New(Float32, 2)
	f.CopyFrom([]float32{0.5, -0.25}, 0, 0, 2)
	assert.InDelta(t, 0.75, f.AbsDiff(0, 1), 1e-7)
}

// Full-scale differences exceed the native integer range and must not wrap.
func TestBuffer_AbsDiff_FullScale(t *testing.T) {
	b8 := New(Int8, 2)
	b8.CopyFrom([]int8{-128, 127}, 0, 0, 2)
	assert.Equal(t, 255.0, b8.AbsDiff(0, 1))
	assert.Equal(t, 255.0, b8.AbsDiff(1, 0))

	b16 := New(Int16, 2)
	b16.CopyFrom([]int16{-32768, 32767}, 0, 0, 2)
	assert.Equal(t, 65535.0, b16.AbsDiff(0, 1))
	assert.Equal(t, 65535.0, b16.AbsDiff(1, 0))

	b32 := New(Int32, 2)
	b32.CopyFrom([]int32{-2147483648, 2147483647}, 0, 0, 2)
	assert.Equal(t, 4294967295.0, b32.AbsDiff(0, 1))
}

func TestNew_EveryType(t *testing.T) {
	for _, typ := range []Type{Int8, Int16, Int32, Int64, Float32, Float64} {
		b := New(typ, 8)
		require.NotNil(t, b, "type %s", typ)
		assert.Equal(t, typ, b.Type())
		assert.Equal(t, 8, b.Len())
		assert.Equal(t, 0.0, b.At(0))
	}
	assert.Nil(t, New(NotSet, 8))
}
