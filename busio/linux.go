package busio

import (
	"fmt"

	"github.com/swdee/go-i2c"
)

// Linux is a bus adapter over a Linux i2c-dev character device such as
// /dev/i2c-1.  The device is opened by Init and closed by DeInit.
type Linux struct {
	clock

	dev  string
	addr uint16
	bus  *i2c.Options
}

// NewLinux returns an adapter for the sensor at addr on the i2c-dev device
// dev.  No I/O is done until Init is called.
func NewLinux(dev string, addr uint16) *Linux {
	return &Linux{dev: dev, addr: addr}
}

// Init opens the i2c-dev device.  It does nothing if the device is already
// open.
func (l *Linux) Init() error {

	if l.bus != nil {
		return nil
	}

	bus, err := i2c.New(uint8(l.addr), l.dev)

	if err != nil {
		return fmt.Errorf("open %s: %w", l.dev, err)
	}

	l.bus = bus
	return nil
}

// DeInit closes the i2c-dev device
func (l *Linux) DeInit() error {

	if l.bus == nil {
		return nil
	}

	err := l.bus.Close()
	l.bus = nil

	return err
}

// Address returns the sensor address
func (l *Linux) Address() uint16 {
	return l.addr
}

// ReadReg reads len(buf) bytes starting at register reg.  The i2c-dev slave
// address is fixed when the device is opened so addr must match it.
func (l *Linux) ReadReg(addr, reg uint16, buf []byte) error {

	if err := l.check(addr); err != nil {
		return err
	}

	if _, err := l.bus.WriteBytes(regAddr(reg)); err != nil {
		return err
	}

	n, err := l.bus.ReadBytes(buf)

	if err != nil {
		return err
	}

	if n < len(buf) {
		return fmt.Errorf("ReadReg: insufficient data, got %d of %d bytes", n, len(buf))
	}

	return nil
}

// WriteReg writes buf starting at register reg
func (l *Linux) WriteReg(addr, reg uint16, buf []byte) error {

	if err := l.check(addr); err != nil {
		return err
	}

	_, err := l.bus.WriteBytes(frame(reg, buf))
	return err
}

// check verifies the device is open and addressed at addr
func (l *Linux) check(addr uint16) error {

	if l.bus == nil {
		return fmt.Errorf("I2C device %s is not initiated", l.dev)
	}

	if addr != l.addr {
		return fmt.Errorf("I2C device %s is opened at address 0x%02X, not 0x%02X",
			l.dev, l.addr, addr)
	}

	return nil
}
