package constants

import "os"

func GetOutRoot() string {
	path := os.Getenv("CLIPGEN_OUT")
	if path != "" {
		return path
	}
	return "."
}

// SMF resolution. Bar counts in reports divide by TicksPerBar, the
// accounting the existing clip packs use.
const TicksPerQuarter = 480
const TicksPerBar = 480

const DefaultBPM = 120
const DefaultDurationTicks = 3840 // 8 bars
const LayoutDurationTicks = 1920  // 4 bars

const DefaultVelocity = 64

// Root gets the loudest hit, the fifth the softest.
var TriadVelocities = [3]uint8{64, 60, 56}

const NotePadWidth = 2
const ChordPadWidth = 3
