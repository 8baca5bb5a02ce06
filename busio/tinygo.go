package busio

import (
	"errors"

	"tinygo.org/x/drivers"
)

// TinyGo is a bus adapter over a TinyGo drivers.I2C bus, such as
// machine.I2C0.  The bus must be configured by the caller before Init.
type TinyGo struct {
	clock

	bus  drivers.I2C
	addr uint16
}

// NewTinyGo returns an adapter for the sensor at addr on bus
func NewTinyGo(bus drivers.I2C, addr uint16) *TinyGo {
	return &TinyGo{bus: bus, addr: addr}
}

// Init checks a bus was supplied
func (t *TinyGo) Init() error {

	if t.bus == nil {
		return errors.New("tinygo: no I2C bus")
	}

	return nil
}

// DeInit does nothing
func (t *TinyGo) DeInit() error {
	return nil
}

// Address returns the sensor address
func (t *TinyGo) Address() uint16 {
	return t.addr
}

// ReadReg reads len(buf) bytes starting at register reg
func (t *TinyGo) ReadReg(addr, reg uint16, buf []byte) error {
	return t.bus.Tx(addr, regAddr(reg), buf)
}

// WriteReg writes buf starting at register reg
func (t *TinyGo) WriteReg(addr, reg uint16, buf []byte) error {
	return t.bus.Tx(addr, frame(reg, buf), nil)
}
