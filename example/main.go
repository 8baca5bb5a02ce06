package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/swdee/go-imx335"
	"github.com/swdee/go-imx335/busio"
)

func main() {

	cfgFile := flag.String("c", "", "Path to YAML configuration file")
	backend := flag.String("backend", "", "Bus backend to use, linux or periph")
	bus := flag.String("b", "", "I2C bus to use, /dev/i2c-N for linux or bus name for periph")
	verbose := flag.Bool("v", false, "Log driver debug messages")
	flag.Parse()

	cfg := defaultConfig()

	if *cfgFile != "" {
		var err error

		if cfg, err = loadConfig(*cfgFile); err != nil {
			log.Fatalf("Load config: %v", err)
		}
	}

	// flags override the configuration file
	if *backend != "" {
		cfg.Backend = *backend
	}

	if *bus != "" {
		cfg.Bus = *bus
	}

	if err := cfg.validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	adapter, closeBus, err := openBus(cfg)

	if err != nil {
		log.Fatal(err)
	}

	defer closeBus()

	var sensor *imx335.IMX335

	if *verbose {
		sensor = imx335.NewWithLog(log.New(os.Stderr, "imx335 ", log.LstdFlags))
	} else {
		sensor = imx335.New()
	}

	if err := sensor.RegisterBus(adapter); err != nil {
		log.Fatalf("Register bus failed: %v", err)
	}

	id, err := sensor.ReadID()

	if err != nil {
		log.Fatalf("Read ID failed: %v", err)
	}

	fmt.Printf("Chip ID: 0x%02X\n", id)

	if id != uint32(imx335.ChipID) {
		log.Printf("Unexpected chip ID 0x%02X, continuing", id)
	}

	if err := sensor.Init(imx335.R2592x1940, imx335.RawRGGB10); err != nil {
		log.Fatalf("Init failed: %v", err)
	}

	fmt.Printf("Streaming %dx%d RAW10, %d lines per frame\n", imx335.Width,
		imx335.Height, imx335.LinesPerFrame())

	setExposure(sensor, cfg)

	if err := sensor.DeInit(); err != nil {
		log.Fatalf("DeInit failed: %v", err)
	}
}

// openBus returns the bus adapter selected by the configuration and a
// function releasing it
func openBus(cfg Config) (imx335.BusAdapter, func(), error) {

	switch cfg.Backend {
	case "periph":
		if _, err := host.Init(); err != nil {
			return nil, nil, fmt.Errorf("periph host init: %w", err)
		}

		b, err := i2creg.Open(cfg.Bus)

		if err != nil {
			return nil, nil, fmt.Errorf("open I2C bus %s: %w", cfg.Bus, err)
		}

		return busio.NewPeriph(b, cfg.Address), func() { b.Close() }, nil

	default:
		l := busio.NewLinux(cfg.Bus, cfg.Address)
		return l, func() { l.DeInit() }, nil
	}
}

// setExposure applies the configured exposure and gain, falling back to the
// Init defaults for whichever is not set
func setExposure(sensor *imx335.IMX335, cfg Config) {

	if cfg.Exposure == nil && cfg.Gain == nil {
		return
	}

	exposure, gain := imx335.ExposureDefault, imx335.AgainDefault

	if cfg.Exposure != nil {
		exposure = *cfg.Exposure
	}

	if cfg.Gain != nil {
		gain = *cfg.Gain
	}

	if err := sensor.SetExposureGain(exposure, gain); err != nil {
		log.Fatalf("Set exposure/gain failed: %v", err)
	}

	fmt.Printf("Exposure: %d lines, gain: %d\n", exposure, gain)
}
