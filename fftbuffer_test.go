package fada

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFFTBuffer(t *testing.T) {
	t.Run("rounds down to a power of two", func(t *testing.T) {
		for _, tc := range []struct{ req, want int }{
			{1, 1},
			{2, 2},
			{3, 2},
			{1000, 512},
			{1024, 1024},
			{2000, 1024},
			{2048, 2048},
		} {
			b, err := NewFFTBuffer(tc.req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, b.Size(), "requested %d", tc.req)
			assert.Len(t, b.Raw(), 2*tc.want)
		}
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := NewFFTBuffer(0)
		assert.ErrorIs(t, err, ErrInvalidSize)
		_, err = NewFFTBuffer(-5)
		assert.ErrorIs(t, err, ErrInvalidSize)
	})
}

func TestFFTBuffer_Value(t *testing.T) {
	b, err := NewFFTBuffer(4)
	require.NoError(t, err)
	copy(b.Raw(), []float64{4, 0, -2, 2, 0, 0, 1, -1})

	v, err := b.Value(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "(|4|+|0|)/4")

	v, err = b.Value(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "(|-2|+|2|)/4")

	v, err = b.Value(3)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v, "(|1|+|-1|)/4")

	_, err = b.Value(4)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = b.Value(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)

	var nilBuf *FFTBuffer
	_, err = nilBuf.Value(0)
	assert.ErrorIs(t, err, ErrInvalidFFTBuffer)
}

func TestFFTBuffer_Values(t *testing.T) {
	b, err := NewFFTBuffer(2)
	require.NoError(t, err)
	copy(b.Raw(), []float64{2, 0, -1, 1})

	out := make([]float64, 2)
	require.NoError(t, b.Values(out))
	assert.Equal(t, []float64{1, 1}, out)

	assert.ErrorIs(t, b.Values(nil), ErrInvalidParameter)
	assert.ErrorIs(t, b.Values(make([]float64, 1)), ErrInvalidParameter)
}

func TestFFTBuffer_ValuesRange(t *testing.T) {
	b, err := NewFFTBuffer(8)
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		b.Raw()[2*i] = float64(i) * 8
	}

	t.Run("explicit range", func(t *testing.T) {
		out := make([]float64, 3)
		require.NoError(t, b.ValuesRange(out, 2, 3))
		assert.Equal(t, []float64{2, 3, 4}, out)
	})

	t.Run("zero length reads to the end", func(t *testing.T) {
		out := make([]float64, 8)
		require.NoError(t, b.ValuesRange(out, 5, 0))
		assert.Equal(t, []float64{5, 6, 7}, out[:3])
	})

	t.Run("bounds", func(t *testing.T) {
		out := make([]float64, 8)
		assert.ErrorIs(t, b.ValuesRange(out, 6, 3), ErrIndexOutOfBounds)
		assert.ErrorIs(t, b.ValuesRange(out, 9, 0), ErrIndexOutOfBounds)
		assert.ErrorIs(t, b.ValuesRange(out, -1, 2), ErrIndexOutOfBounds)
		assert.ErrorIs(t, b.ValuesRange(make([]float64, 2), 0, 4), ErrInvalidParameter)
		assert.ErrorIs(t, b.ValuesRange(nil, 0, 4), ErrInvalidParameter)
	})
}

func TestFFTBuffer_Close(t *testing.T) {
	b, err := NewFFTBuffer(16)
	require.NoError(t, err)
	require.NoError(t, b.Close())

	assert.Equal(t, 0, b.Size())
	_, err = b.Value(0)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)

	require.NoError(t, b.Close(), "close is safe to repeat")
}
