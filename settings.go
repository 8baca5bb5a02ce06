package imx335

import "fmt"

const (
	// Width is the active frame width for 2592x1940 output
	Width uint32 = 2592
	// Height is the active frame height for 2592x1940 output
	Height uint32 = 1940

	// VblankMin is the smallest vertical blanking in lines
	VblankMin uint32 = 2560
	// VblankMax is the largest vertical blanking in lines
	VblankMax uint32 = 133060
	// VblankDefault is the vertical blanking used, it can not be changed
	VblankDefault = VblankMin

	// PixelClock is the pixel clock in Hz
	PixelClock uint32 = 396000000

	// ExposureMin is the shortest exposure in lines
	ExposureMin uint32 = 1
	// ExposureOffset is the number of lines of a frame that can not be used
	// for integration
	ExposureOffset uint32 = 9
	// ExposureDefault is the exposure in lines applied by Init
	ExposureDefault uint32 = 0x648

	// AgainMin is the lowest analog gain
	AgainMin uint32 = 0
	// AgainMax is the highest analog gain
	AgainMax uint32 = 240
	// AgainDefault is the analog gain applied by Init
	AgainDefault = AgainMax / 8
)

// LinesPerFrame returns the frame length in lines for the single supported
// resolution
func LinesPerFrame() uint32 {
	return VblankDefault + Height
}

// ExposureMax returns the longest exposure in lines that fits in a frame
func ExposureMax() uint32 {
	return LinesPerFrame() - ExposureOffset
}

// SetExposureGain sets the exposure, given in lines, and the analog gain.
// The frame length, shutter and gain registers are written under register
// group hold so the sensor applies them to the same frame.  Out of range
// values are rejected before anything is written to the sensor.
func (v *IMX335) SetExposureGain(exposure, gain uint32) error {

	if v == nil {
		return ErrNilSensor
	}

	if v.io == nil {
		return ErrNoBus
	}

	lpfr := LinesPerFrame()

	if exposure > lpfr-ExposureOffset {
		return fmt.Errorf("%w: %d lines, max %d", ErrExposureRange, exposure,
			lpfr-ExposureOffset)
	}

	if gain > AgainMax {
		return fmt.Errorf("%w: %d, max %d", ErrGainRange, gain, AgainMax)
	}

	// shutter counts lines from the start of the frame to the start of
	// integration
	shutter := lpfr - exposure

	// hold is released by the sensor itself at the next frame boundary
	if err := v.writeReg(REG_HOLD, 0x01); err != nil {
		return err
	}

	if err := v.writeReg24Bit(LPFR, lpfr); err != nil {
		return err
	}

	if err := v.writeReg24Bit(SHUTTER, shutter); err != nil {
		return err
	}

	if err := v.writeReg16Bit(AGAIN, uint16(gain)); err != nil {
		return err
	}

	v.log.Printf("Exposure set to %d lines (shutter %d), gain %d", exposure,
		shutter, gain)

	return nil
}
