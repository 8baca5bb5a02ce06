package busio

import (
	"errors"

	"periph.io/x/conn/v3/i2c"
)

// Periph is a bus adapter over a periph.io I²C bus.  The bus is owned by the
// caller; Init and DeInit do not open or close it.
type Periph struct {
	clock

	bus  i2c.Bus
	addr uint16
}

// NewPeriph returns an adapter for the sensor at addr on bus b
func NewPeriph(b i2c.Bus, addr uint16) *Periph {
	return &Periph{bus: b, addr: addr}
}

// Init checks a bus was supplied
func (p *Periph) Init() error {

	if p.bus == nil {
		return errors.New("periph: no I²C bus")
	}

	return nil
}

// DeInit does nothing, the bus is closed by its owner
func (p *Periph) DeInit() error {
	return nil
}

// Address returns the sensor address
func (p *Periph) Address() uint16 {
	return p.addr
}

// ReadReg reads len(buf) bytes starting at register reg in one transaction
func (p *Periph) ReadReg(addr, reg uint16, buf []byte) error {
	return p.bus.Tx(addr, regAddr(reg), buf)
}

// WriteReg writes buf starting at register reg
func (p *Periph) WriteReg(addr, reg uint16, buf []byte) error {
	return p.bus.Tx(addr, frame(reg, buf), nil)
}
