// Package busio provides imx335.BusAdapter implementations over Linux
// i2c-dev, periph.io and TinyGo I2C buses.
//
// Every adapter frames a register access the same way: the 16-bit register
// offset is sent most significant byte first, followed by the payload for a
// write, or followed by a repeated start and read for a read.  The sensor
// auto-increments the offset for multi-byte transfers.
package busio
