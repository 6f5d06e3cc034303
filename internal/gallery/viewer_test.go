package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImages() []string {
	return []string{"a.png", "b.png", "c.png"}
}

func TestViewer_OpenClose(t *testing.T) {
	v := NewViewer(testImages())

	assert.False(t, v.IsOpen())

	require.True(t, v.Open(1))
	assert.True(t, v.IsOpen())
	assert.Equal(t, 1, v.Index())

	current, ok := v.Current()
	require.True(t, ok)
	assert.Equal(t, "b.png", current)

	v.Close()
	assert.False(t, v.IsOpen())

	_, ok = v.Current()
	assert.False(t, ok)
}

func TestViewer_OpenOutOfRange(t *testing.T) {
	v := NewViewer(testImages())

	assert.False(t, v.Open(-1))
	assert.False(t, v.Open(3))
	assert.False(t, v.IsOpen())
}

func TestViewer_OpenEmptyList(t *testing.T) {
	v := NewViewer(nil)

	assert.False(t, v.Open(0))
	assert.False(t, v.IsOpen())
}

func TestViewer_NextWrapsAround(t *testing.T) {
	v := NewViewer(testImages())
	require.True(t, v.Open(0))

	v.Next()
	assert.Equal(t, 1, v.Index())
	v.Next()
	assert.Equal(t, 2, v.Index())
	v.Next()
	assert.Equal(t, 0, v.Index())
}

func TestViewer_PreviousWrapsAround(t *testing.T) {
	v := NewViewer(testImages())
	require.True(t, v.Open(0))

	v.Previous()
	assert.Equal(t, 2, v.Index())
	v.Previous()
	assert.Equal(t, 1, v.Index())
}

func TestViewer_NavigationNoopWhenClosed(t *testing.T) {
	v := NewViewer(testImages())

	v.Next()
	v.Previous()
	assert.Equal(t, 0, v.Index())
	assert.False(t, v.IsOpen())
}

func TestViewer_HandleKey(t *testing.T) {
	v := NewViewer(testImages())
	require.True(t, v.Open(0))

	v.HandleKey(KeyArrowRight)
	assert.Equal(t, 1, v.Index())

	v.HandleKey(KeyArrowLeft)
	assert.Equal(t, 0, v.Index())

	// Неизвестные клавиши игнорируются
	v.HandleKey("Enter")
	assert.Equal(t, 0, v.Index())
	assert.True(t, v.IsOpen())

	v.HandleKey(KeyEscape)
	assert.False(t, v.IsOpen())

	// После закрытия клавиши не действуют
	v.HandleKey(KeyArrowRight)
	assert.Equal(t, 0, v.Index())
}

func TestViewer_Counter(t *testing.T) {
	v := NewViewer(testImages())
	require.True(t, v.Open(2))

	assert.Equal(t, "3 / 3", v.Counter())

	v.Next()
	assert.Equal(t, "1 / 3", v.Counter())
}
