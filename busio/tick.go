package busio

import (
	"time"

	"github.com/swdee/go-imx335"
)

var (
	_ imx335.BusAdapter = (*Linux)(nil)
	_ imx335.BusAdapter = (*Periph)(nil)
	_ imx335.BusAdapter = (*TinyGo)(nil)
)

// clock provides the millisecond tick for an adapter.  The zero value starts
// counting on first use.
type clock struct {
	start time.Time
}

// GetTick returns milliseconds elapsed since the adapter's clock started.
// It wraps after about 49 days.
func (c *clock) GetTick() uint32 {

	if c.start.IsZero() {
		c.start = time.Now()
	}

	return uint32(time.Since(c.start).Milliseconds())
}

// regAddr returns the big-endian wire form of a register offset
func regAddr(reg uint16) []byte {
	return []byte{byte(reg >> 8), byte(reg)}
}

// frame returns the register offset followed by the payload
func frame(reg uint16, data []byte) []byte {

	buf := make([]byte, 0, 2+len(data))
	buf = append(buf, regAddr(reg)...)

	return append(buf, data...)
}
