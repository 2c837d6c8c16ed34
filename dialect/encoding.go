package dialect

import "math"

// Encoding rules between human units and the device's normalized wire
// representation. Out-of-range inputs are clamped to the nearest bound, not
// rejected. Wire values are float32 because that is the OSC argument type
// the devices send and accept.

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EncodeFader passes a 0..1 fader level through unconverted; the wire scale
// already is the fader scale (0.0 = -inf dB, 0.75 = unity, 1.0 = +10 dB).
func EncodeFader(level float64) float32 {
	return float32(clamp(level, 0, 1))
}

// DecodeFader is the identity on the 0..1 fader scale.
func DecodeFader(wire float32) float64 {
	return float64(wire)
}

// EncodeMute converts a muted flag to the wire "on" value, which is
// inverted: 1 means the strip is passing audio, 0 means it is muted.
func EncodeMute(muted bool) int32 {
	if muted {
		return 0
	}
	return 1
}

// DecodeMute converts a wire "on" value back to a muted flag.
func DecodeMute(wire int32) bool {
	return wire == 0
}

// EncodePan maps -1.0 (hard left) .. 1.0 (hard right) to wire 0..1.
func EncodePan(pan float64) float32 {
	return float32((clamp(pan, -1, 1) + 1) / 2)
}

// DecodePan maps wire 0..1 back to -1.0 .. 1.0.
func DecodePan(wire float32) float64 {
	return float64(wire)*2 - 1
}

// EncodeEQGain maps -15..+15 dB to wire 0..1.
func EncodeEQGain(db float64) float32 {
	return float32((clamp(db, -15, 15) + 15) / 30)
}

// DecodeEQGain maps wire 0..1 back to -15..+15 dB.
func DecodeEQGain(wire float32) float64 {
	return float64(wire)*30 - 15
}

// EncodeFrequency maps 20..20000 Hz logarithmically to wire 0..1 over the
// three decades of the band: log10(f/20) / log10(1000).
func EncodeFrequency(hz float64) float32 {
	return float32(math.Log10(clamp(hz, 20, 20000)/20) / 3)
}

// DecodeFrequency maps wire 0..1 back to 20..20000 Hz.
func DecodeFrequency(wire float32) float64 {
	return 20 * math.Pow(10, 3*float64(wire))
}

// EncodeGateThreshold maps -80..0 dB to wire 0..1.
func EncodeGateThreshold(db float64) float32 {
	return float32((clamp(db, -80, 0) + 80) / 80)
}

// DecodeGateThreshold maps wire 0..1 back to -80..0 dB.
func DecodeGateThreshold(wire float32) float64 {
	return float64(wire)*80 - 80
}

// EncodeCompThreshold maps -60..0 dB to wire 0..1.
func EncodeCompThreshold(db float64) float32 {
	return float32((clamp(db, -60, 0) + 60) / 60)
}

// DecodeCompThreshold maps wire 0..1 back to -60..0 dB.
func DecodeCompThreshold(wire float32) float64 {
	return float64(wire)*60 - 60
}

// EncodeCompRatio maps a 1:1 .. 20:1 compression ratio to wire 0..1.
func EncodeCompRatio(ratio float64) float32 {
	return float32((clamp(ratio, 1, 20) - 1) / 19)
}

// DecodeCompRatio maps wire 0..1 back to a 1..20 ratio.
func DecodeCompRatio(wire float32) float64 {
	return float64(wire)*19 + 1
}

// EncodeLowCut maps the 20..400 Hz high-pass frequency to wire 0..1 as
// log10(f/20) / log10(20). Frequencies below 250 Hz get a +1 Hz nudge
// before encoding; the device quantizes the control and lands one step low
// without it. The nudge is an observed-behavior constant, not derived, and
// is deliberately not reversed by DecodeLowCut.
func EncodeLowCut(hz float64) float32 {
	f := clamp(hz, 20, 400)
	if f < 250 {
		f++
	}
	return float32(math.Log10(f/20) / math.Log10(20))
}

// DecodeLowCut maps wire 0..1 back to 20..400 Hz.
func DecodeLowCut(wire float32) float64 {
	return 20 * math.Pow(20, float64(wire))
}

// EncodeLevelDB maps a send level in dB (-90 = off .. +10) onto the fader
// wire scale using the four-segment calibration curve observed on the
// hardware: each segment doubles the dB-per-wire-unit slope of the one
// above it, with unity gain landing exactly on wire 0.75. The segment
// constants are empirical; keep them as they are.
func EncodeLevelDB(db float64) float32 {
	d := clamp(db, -90, 10)
	switch {
	case d >= -10:
		return float32((d + 30) / 40)
	case d >= -30:
		return float32((d + 50) / 80)
	case d >= -60:
		return float32((d + 70) / 160)
	default:
		return float32((d + 90) / 480)
	}
}

// DecodeLevelDB inverts EncodeLevelDB segment by segment.
func DecodeLevelDB(wire float32) float64 {
	d := float64(wire)
	switch {
	case d >= 0.5:
		return d*40 - 30
	case d >= 0.25:
		return d*80 - 50
	case d >= 0.0625:
		return d*160 - 70
	default:
		return d*480 - 90
	}
}
