package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingBuffer_PushRemove(t *testing.T) {
	rb := NewRingBuffer(4)

	assert.Equal(t, 4, rb.WriteAvailable())
	assert.Equal(t, 0, rb.ReadAvailable())

	require.True(t, rb.Push(1, 2))
	require.True(t, rb.Push(3, 4))

	assert.Equal(t, 2, rb.ReadAvailable())
	assert.Equal(t, complex64(complex(1, 2)), rb.At(0))
	assert.Equal(t, complex64(complex(3, 4)), rb.At(1))

	rb.Remove(1)
	assert.Equal(t, 1, rb.ReadAvailable())
	assert.Equal(t, complex64(complex(3, 4)), rb.At(0))
}

func TestRingBuffer_FullRejectsPush(t *testing.T) {
	rb := NewRingBuffer(2)

	require.True(t, rb.Push(0, 0))
	require.True(t, rb.Push(0, 0))
	assert.False(t, rb.Push(0, 0))
}

func TestRingBuffer_WrapsAroundCapacity(t *testing.T) {
	rb := NewRingBuffer(3)

	require.True(t, rb.Push(1, 0))
	require.True(t, rb.Push(2, 0))
	rb.Remove(1)
	require.True(t, rb.Push(3, 0))
	require.True(t, rb.Push(4, 0))

	assert.Equal(t, 3, rb.ReadAvailable())
	assert.Equal(t, complex64(complex(2, 0)), rb.At(0))
	assert.Equal(t, complex64(complex(3, 0)), rb.At(1))
	assert.Equal(t, complex64(complex(4, 0)), rb.At(2))
}
