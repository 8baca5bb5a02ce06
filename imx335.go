// go-imx335 is a register-bus driver for the Sony IMX335 CMOS image sensor.
package imx335

import (
	"errors"
	"io"
	"log"
)

const (
	// Address is the default 7-bit address of the sensor on the I2C bus
	Address uint16 = 0x1A

	// R2592x1940 is the resolution selector for 2592x1940, the only
	// resolution supported
	R2592x1940 uint32 = 10
	// RawRGGB10 is the pixel format selector for 10 bit RAW RGGB output
	RawRGGB10 uint32 = 10
)

var (
	// ErrNilSensor is returned when a method is called on a nil sensor handle.
	ErrNilSensor = errors.New("imx335: nil sensor")

	// ErrNoBus is returned when no bus adapter has been registered.
	ErrNoBus = errors.New("imx335: bus adapter not registered")

	// ErrUnsupportedResolution is returned by Init for any resolution other
	// than R2592x1940.
	ErrUnsupportedResolution = errors.New("imx335: unsupported resolution")

	// ErrUnsupportedPixelFormat is returned by Init for any pixel format other
	// than RawRGGB10.
	ErrUnsupportedPixelFormat = errors.New("imx335: unsupported pixel format")

	// ErrExposureRange is returned when the requested exposure does not fit in
	// the frame.
	ErrExposureRange = errors.New("imx335: exposure out of range")

	// ErrGainRange is returned when the requested analog gain exceeds AgainMax.
	ErrGainRange = errors.New("imx335: gain out of range")
)

// BusAdapter is the register bus the sensor is programmed through.  Register
// offsets are 16 bit and multi-byte buffers are transferred starting at the
// given offset.
type BusAdapter interface {
	// Init performs physical bus or link initialization
	Init() error
	// DeInit reverses Init
	DeInit() error
	// Address returns the device address of the sensor on the bus
	Address() uint16
	ReadReg(addr, reg uint16, buf []byte) error
	WriteReg(addr, reg uint16, buf []byte) error
	// GetTick returns a monotonic millisecond counter
	GetTick() uint32
}

// Capabilities reports the image tuning features supported by a camera
// sensor driver.  Every field is zero for the IMX335.
type Capabilities struct {
	Resolution    uint32
	LightMode     uint32
	SpecialEffect uint32
	Brightness    uint32
	Saturation    uint32
	Contrast      uint32
	HueDegree     uint32
	MirrorFlip    uint32
	Zoom          uint32
	NightMode     uint32
}

// SensorDriver is the operation set shared by camera sensor drivers so
// callers can drive different sensor models the same way.
type SensorDriver interface {
	Init(resolution, pixelFormat uint32) error
	DeInit() error
	ReadID() (uint32, error)
	GetCapabilities() (Capabilities, error)
	SetExposureGain(exposure, gain uint32) error
}

var _ SensorDriver = (*IMX335)(nil)

// IMX335 represents a single IMX335 sensor instance.  It is not safe for
// concurrent use, callers sharing one instance must serialize access.
type IMX335 struct {
	// io is the register bus
	io BusAdapter

	initialized bool

	// log logger for debugging
	log *log.Logger
}

// New returns a new IMX335 sensor instance.  A bus adapter must be attached
// with RegisterBus before the sensor can be used.
func New() *IMX335 {
	// create null logger
	return NewWithLog(log.New(io.Discard, "", log.LstdFlags))
}

// NewWithLog returns a new IMX335 sensor instance with logger to be used for
// debugging
func NewWithLog(log *log.Logger) *IMX335 {
	return &IMX335{log: log}
}

// RegisterBus binds the bus adapter to the sensor and runs the adapter's Init
func (v *IMX335) RegisterBus(bus BusAdapter) error {

	if v == nil {
		return ErrNilSensor
	}

	if bus == nil {
		return ErrNoBus
	}

	v.io = bus

	return bus.Init()
}

// IsInitialized reports whether Init has completed successfully and DeInit
// has not been called since
func (v *IMX335) IsInitialized() bool {
	return v != nil && v.initialized
}

// GetCapabilities returns the supported feature set, which is empty
func (v *IMX335) GetCapabilities() (Capabilities, error) {

	if v == nil {
		return Capabilities{}, ErrNilSensor
	}

	return Capabilities{}, nil
}
