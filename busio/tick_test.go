package busio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockMonotonic(t *testing.T) {
	var c clock

	first := c.GetTick()
	assert.Less(t, first, uint32(5))

	time.Sleep(3 * time.Millisecond)
	assert.GreaterOrEqual(t, c.GetTick(), first+3)
}

func TestFrame(t *testing.T) {
	assert.Equal(t, []byte{0x39, 0x12}, regAddr(0x3912))
	assert.Equal(t, []byte{0x30, 0x58, 0x01, 0x02, 0x03}, frame(0x3058, []byte{1, 2, 3}))
	assert.Equal(t, []byte{0x30, 0x00}, frame(0x3000, nil))
}
