package surface

// HeightColor maps a normalized height t in [0,1] onto the default
// blue → cyan → green → red → yellow ramp. The four segments interpolate
// linearly between exact endpoint colors at t = 0, 0.25, 0.5, 0.75 and 1.
func HeightColor(t float32) (r, g, b float32) {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	switch {
	case t < 0.25: // blue -> cyan
		k := t / 0.25
		return 0, k, 1
	case t < 0.5: // cyan -> green
		k := (t - 0.25) / 0.25
		return 0, 1, 1 - k
	case t < 0.75: // green -> red
		k := (t - 0.5) / 0.25
		return k, 1 - k, 0
	default: // red -> yellow
		k := (t - 0.75) / 0.25
		return 1, k, 0
	}
}
