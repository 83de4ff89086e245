package chart

import (
	"math"
	"strconv"
	"strings"
)

// fullSweepEpsilon absorbs float error when an arc spans the whole circle.
const fullSweepEpsilon = 1e-9

// Point is a position in SVG user space.
type Point struct {
	X float64
	Y float64
}

// PolarToCartesian converts angle (0 at 12 o'clock, clockwise) at radius r
// around (cx, cy) to a point. SVG's y axis points down, so subtracting π/2
// moves 0 from 3 o'clock to 12 o'clock.
func PolarToCartesian(cx, cy, r, angle float64) Point {
	return Point{
		X: cx + r*math.Cos(angle-math.Pi/2),
		Y: cy + r*math.Sin(angle-math.Pi/2),
	}
}

// Wedge returns the SVG path of the pie slice between startAngle and
// endAngle. An end before the start wraps clockwise past 12 o'clock. An
// empty string is returned for zero-length arcs or a non-positive radius.
func Wedge(cx, cy, r, startAngle, endAngle float64) string {
	sweep := endAngle - startAngle
	if sweep < 0 {
		sweep += fullCircle
	}

	if r <= 0 || sweep == 0 || math.IsNaN(sweep) {
		return ""
	}

	if sweep >= fullCircle-fullSweepEpsilon {
		return circle(cx, cy, r)
	}

	start := PolarToCartesian(cx, cy, r, startAngle)
	end := PolarToCartesian(cx, cy, r, startAngle+sweep)

	largeArc := "0"
	if sweep > math.Pi {
		largeArc = "1"
	}

	var b pathBuilder

	b.cmd("M", start.X, start.Y)
	b.arc(r, largeArc, end)
	b.cmd("L", cx, cy)
	b.cmd("L", start.X, start.Y)
	b.close()

	return b.String()
}

// circle draws a full disc as two half arcs since an SVG arc whose end
// point equals its start point renders nothing.
func circle(cx, cy, r float64) string {
	top := PolarToCartesian(cx, cy, r, 0)
	bottom := PolarToCartesian(cx, cy, r, math.Pi)

	var b pathBuilder

	b.cmd("M", top.X, top.Y)
	b.arc(r, "0", bottom)
	b.arc(r, "0", top)
	b.close()

	return b.String()
}

type pathBuilder struct {
	strings.Builder
}

func (b *pathBuilder) cmd(name string, coords ...float64) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}

	b.WriteString(name)

	for _, c := range coords {
		b.WriteByte(' ')
		b.WriteString(formatCoord(c))
	}
}

// arc appends a clockwise elliptical arc command to p.
func (b *pathBuilder) arc(r float64, largeArc string, p Point) {
	b.cmd("A", r, r)
	b.WriteString(" 0 " + largeArc + " 1 ")
	b.WriteString(formatCoord(p.X) + " " + formatCoord(p.Y))
}

func (b *pathBuilder) close() {
	b.WriteString(" Z")
}

// formatCoord rounds to three decimals and drops trailing zeros.
func formatCoord(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		// avoid "-0"
		v = 0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
