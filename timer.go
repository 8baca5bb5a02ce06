package imx335

// delay blocks for the given number of milliseconds by polling the bus
// adapter's tick counter.  Tick wrap around is handled by the unsigned
// subtraction.
func (v *IMX335) delay(ms uint32) {

	start := v.io.GetTick()

	for v.io.GetTick()-start < ms {
	}
}
