// Package chart projects sessions onto clock faces and renders them as
// pie-slice wedges
package chart

import (
	"math"

	"github.com/ayoisaiah/dayclock/internal/timeutil"
)

const fullCircle = 2 * math.Pi

// Face identifies one of the three clock circles.
type Face string

const (
	FaceDay Face = "day"
	FaceAM  Face = "am"
	FacePM  Face = "pm"
)

// minutesToAngle maps minutes onto [0, 2π] for a face spanning scale
// minutes. Angle 0 is 12 o'clock and angles increase clockwise.
func minutesToAngle(minutes, scale int) float64 {
	return float64(minutes) / float64(scale) * fullCircle
}

// Angle24 returns the angle of hour:minute on the 24-hour face.
func Angle24(hour, minute int) float64 {
	return minutesToAngle(hour*60+minute, timeutil.MinutesInADay)
}

// Angle12 returns the angle of hour:minute on a 12-hour face when used as
// the start of an arc. Both 00:00 and 12:00 map to 0.
func Angle12(hour, minute int) float64 {
	return minutesToAngle(
		(hour%12)*60+minute,
		timeutil.MinutesInHalfADay,
	)
}

// Angle12End is Angle12 for the end of an arc: 00:00 and 12:00 map to 2π so
// that an arc running up to the top of the face closes the circle instead
// of collapsing to zero length.
func Angle12End(hour, minute int) float64 {
	total := (hour%12)*60 + minute
	if total == 0 {
		total = timeutil.MinutesInHalfADay
	}

	return minutesToAngle(total, timeutil.MinutesInHalfADay)
}
