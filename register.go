package imx335

import (
	"fmt"
)

const (
	// Mode select, controls streaming or standby output
	MODE_SELECT uint16 = 0x3000

	// Register group hold, freezes application of timing registers
	REG_HOLD uint16 = 0x3001

	// Lines per frame (VMAX), 20 bit little endian over three registers
	LPFR uint16 = 0x3030

	// Shutter width (SHR0), 20 bit little endian over three registers
	SHUTTER uint16 = 0x3058

	// Analog gain, 11 bit little endian over two registers
	AGAIN uint16 = 0x30E8

	// Identification register
	CHIP_ID_REG uint16 = 0x3912
)

const (
	// ModeStreaming is the MODE_SELECT value that starts output
	ModeStreaming uint8 = 0x00
	// ModeStandby is the MODE_SELECT value that stops output
	ModeStandby uint8 = 0x01

	// ChipID is the value read back from CHIP_ID_REG
	ChipID uint8 = 0x00
)

// regval is a single register write of a register table
type regval struct {
	addr uint16
	val  uint8
}

// writeReg writes a 8 bit value to the register
func (v *IMX335) writeReg(reg uint16, value uint8) error {

	if err := v.io.WriteReg(v.io.Address(), reg, []byte{value}); err != nil {
		return fmt.Errorf("write register 0x%04X: %w", reg, err)
	}

	return nil
}

// writeReg16Bit writes a 16 bit value to two consecutive registers, least
// significant byte first
func (v *IMX335) writeReg16Bit(reg uint16, value uint16) error {

	buf := []byte{byte(value), byte(value >> 8)}

	if err := v.io.WriteReg(v.io.Address(), reg, buf); err != nil {
		return fmt.Errorf("write register 0x%04X: %w", reg, err)
	}

	return nil
}

// writeReg24Bit writes the low 24 bits of value to three consecutive
// registers, least significant byte first
func (v *IMX335) writeReg24Bit(reg uint16, value uint32) error {

	buf := []byte{byte(value), byte(value >> 8), byte(value >> 16)}

	if err := v.io.WriteReg(v.io.Address(), reg, buf); err != nil {
		return fmt.Errorf("write register 0x%04X: %w", reg, err)
	}

	return nil
}

// readReg reads an 8-bit value from a 16-bit register.
func (v *IMX335) readReg(reg uint16) (uint8, error) {

	buf := make([]byte, 1)

	if err := v.io.ReadReg(v.io.Address(), reg, buf); err != nil {
		return 0, fmt.Errorf("read register 0x%04X: %w", reg, err)
	}

	return buf[0], nil
}

// writeTable writes every entry of the table in order, stopping at the first
// failed write.  Registers already written are left as they are.
func (v *IMX335) writeTable(name string, regs []regval) error {

	for _, r := range regs {
		if err := v.writeReg(r.addr, r.val); err != nil {
			return fmt.Errorf("write table %s: %w", name, err)
		}
	}

	v.log.Printf("Wrote table %s, %d registers", name, len(regs))

	return nil
}
