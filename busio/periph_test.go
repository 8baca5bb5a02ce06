package busio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"

	"github.com/swdee/go-imx335"
)

func TestPeriphFraming(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x1A, W: []byte{0x30, 0x01, 0x01}},
			{Addr: 0x1A, W: []byte{0x30, 0x30, 0x94, 0x11, 0x00}},
			{Addr: 0x1A, W: []byte{0x39, 0x12}, R: []byte{0x00}},
		},
		DontPanic: true,
	}

	p := NewPeriph(pb, imx335.Address)
	require.NoError(t, p.Init())
	assert.Equal(t, imx335.Address, p.Address())

	require.NoError(t, p.WriteReg(p.Address(), imx335.REG_HOLD, []byte{0x01}))
	require.NoError(t, p.WriteReg(p.Address(), imx335.LPFR, []byte{0x94, 0x11, 0x00}))

	buf := []byte{0xFF}
	require.NoError(t, p.ReadReg(p.Address(), imx335.CHIP_ID_REG, buf))
	assert.Equal(t, []byte{0x00}, buf)

	require.NoError(t, p.DeInit())
	require.NoError(t, pb.Close())
}

func TestPeriphNoBus(t *testing.T) {
	p := NewPeriph(nil, imx335.Address)
	assert.Error(t, p.Init())
}

func TestPeriphSensorReadID(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x1A, W: []byte{0x39, 0x12}, R: []byte{0x00}},
		},
		DontPanic: true,
	}

	s := imx335.New()
	require.NoError(t, s.RegisterBus(NewPeriph(pb, imx335.Address)))

	id, err := s.ReadID()
	require.NoError(t, err)
	assert.Equal(t, uint32(imx335.ChipID), id)
	require.NoError(t, pb.Close())
}
