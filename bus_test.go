package imx335

import (
	"errors"

	"github.com/stretchr/testify/mock"
)

var errBus = errors.New("bus nack")

// regWrite is a single WriteReg call seen by fakeBus
type regWrite struct {
	addr uint16
	reg  uint16
	data []byte
}

// fakeBus records writes, serves reads from a register map and advances its
// tick by one on every GetTick call
type fakeBus struct {
	addr   uint16
	writes []regWrite
	regs   map[uint16]byte
	tick   uint32
	inits  int

	// failReg makes writes to that register fail when failOn is set
	failOn  bool
	failReg uint16
}

func newFakeBus() *fakeBus {
	return &fakeBus{addr: Address, regs: map[uint16]byte{}}
}

func (f *fakeBus) Init() error {
	f.inits++
	return nil
}

func (f *fakeBus) DeInit() error { return nil }

func (f *fakeBus) Address() uint16 { return f.addr }

func (f *fakeBus) ReadReg(addr, reg uint16, buf []byte) error {
	for i := range buf {
		buf[i] = f.regs[reg+uint16(i)]
	}
	return nil
}

func (f *fakeBus) WriteReg(addr, reg uint16, buf []byte) error {
	data := make([]byte, len(buf))
	copy(data, buf)
	f.writes = append(f.writes, regWrite{addr: addr, reg: reg, data: data})

	if f.failOn && reg == f.failReg {
		return errBus
	}
	return nil
}

func (f *fakeBus) GetTick() uint32 {
	t := f.tick
	f.tick++
	return t
}

// mockBus is a testify mock of BusAdapter
type mockBus struct {
	mock.Mock
}

func (m *mockBus) Init() error {
	return m.Called().Error(0)
}

func (m *mockBus) DeInit() error {
	return m.Called().Error(0)
}

func (m *mockBus) Address() uint16 {
	return Address
}

func (m *mockBus) ReadReg(addr, reg uint16, buf []byte) error {
	return m.Called(addr, reg, buf).Error(0)
}

func (m *mockBus) WriteReg(addr, reg uint16, buf []byte) error {
	return m.Called(addr, reg, buf).Error(0)
}

func (m *mockBus) GetTick() uint32 {
	return uint32(m.Called().Int(0))
}
