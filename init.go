package imx335

import (
	"fmt"
)

// StabilizationDelay is the time in milliseconds Init waits after streaming
// is started
const StabilizationDelay uint32 = 20

// Init programs the sensor for the given resolution and pixel format and
// starts streaming.  Calling Init on an initialized sensor does nothing.  If
// any step fails the sensor stays uninitialized, registers already written
// are not restored.
func (v *IMX335) Init(resolution, pixelFormat uint32) error {

	if v == nil {
		return ErrNilSensor
	}

	if v.initialized {
		return nil
	}

	if resolution != R2592x1940 {
		return fmt.Errorf("%w: %d", ErrUnsupportedResolution, resolution)
	}

	if pixelFormat != RawRGGB10 {
		return fmt.Errorf("%w: %d", ErrUnsupportedPixelFormat, pixelFormat)
	}

	if v.io == nil {
		return ErrNoBus
	}

	v.log.Printf("Starting Init()")

	if err := v.writeTable("res_2592_1940", res2592x1940Regs); err != nil {
		return fmt.Errorf("Error on base configuration, %w", err)
	}

	if err := v.writeTable("mode_2l_10b", mode2Lane10BitRegs); err != nil {
		return fmt.Errorf("Error on mode configuration, %w", err)
	}

	if err := v.SetExposureGain(ExposureDefault, AgainDefault); err != nil {
		return fmt.Errorf("Error on default exposure, %w", err)
	}

	// start streaming
	if err := v.writeReg(MODE_SELECT, ModeStreaming); err != nil {
		return fmt.Errorf("Error starting streaming, %w", err)
	}

	v.delay(StabilizationDelay)

	v.initialized = true
	v.log.Printf("Device Init()'d")

	return nil
}

// DeInit marks the sensor as uninitialized so a following Init programs it
// again.  The sensor is left streaming, no registers are written.
func (v *IMX335) DeInit() error {

	if v == nil {
		return ErrNilSensor
	}

	if v.initialized {
		v.initialized = false
		v.log.Printf("Device DeInit()'d")
	}

	return nil
}

// ReadID re-initializes the bus and returns the value of the chip
// identification register.  It does not depend on Init having been called.
func (v *IMX335) ReadID() (uint32, error) {

	if v == nil {
		return 0, ErrNilSensor
	}

	if v.io == nil {
		return 0, ErrNoBus
	}

	// a failed bus init surfaces as a failed read below
	if err := v.io.Init(); err != nil {
		v.log.Printf("Bus Init() failed: %v", err)
	}

	id, err := v.readReg(CHIP_ID_REG)

	if err != nil {
		return 0, err
	}

	return uint32(id), nil
}
