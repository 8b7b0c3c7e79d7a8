// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.5.23
//

package geokit

import (
	"math"
	"strings"
	"time"
)

//-------------------------------------------------------------------
// Resolution
//-------------------------------------------------------------------

// Resolution is the coarsest time unit guaranteed meaningful in a GTime.
// It bounds the precision of string and decimal outputs but does not
// take part in equality.
type Resolution time.Duration

const (
	ResDefault Resolution = 0 // Deduce from the input
	ResDay     Resolution = Resolution(24 * time.Hour)
	ResHour    Resolution = Resolution(time.Hour)
	ResMinute  Resolution = Resolution(time.Minute)
	ResSecond  Resolution = Resolution(time.Second)
	ResMilli   Resolution = Resolution(time.Millisecond)
	ResMicro   Resolution = Resolution(time.Microsecond)
	ResNano    Resolution = Resolution(time.Nanosecond)
)

// ResolutionFromUnit maps a time unit code (D, h, m, s, ms, us, ns) to a
// Resolution. An unknown code maps to ResDefault.
func ResolutionFromUnit(unit string) Resolution {
	switch unit {
	case "D":
		return ResDay
	case "h":
		return ResHour
	case "m":
		return ResMinute
	case "s":
		return ResSecond
	case "ms":
		return ResMilli
	case "us":
		return ResMicro
	case "ns":
		return ResNano
	}
	return ResDefault
}

// Unit code of the resolution
func (r Resolution) String() string {
	switch r {
	case ResDay:
		return "D"
	case ResHour:
		return "h"
	case ResMinute:
		return "m"
	case ResSecond:
		return "s"
	case ResMilli:
		return "ms"
	case ResMicro:
		return "us"
	case ResNano:
		return "ns"
	}
	return "?"
}

// decimals returns how many decimal digits of a second count are
// significant at this resolution.
func (r Resolution) decimals() int {
	switch {
	case r >= ResSecond:
		return 0
	case r >= ResMilli:
		return 3
	case r >= ResMicro:
		return 6
	default:
		return 9
	}
}

//-------------------------------------------------------------------
// GTime
//-------------------------------------------------------------------

// GTime is a time instant for geodetic use: a UTC timestamp with
// nanosecond granularity plus a declared resolution. It converts among
// GPS time (week, seconds of week), fractional year, year/day-of-year,
// Julian Date, Modified Julian Date and the J2000 epoch offset. A GTime
// is immutable after construction; every representation is computed
// from the stored instant on demand.
//
// An unparseable input yields the invalid instant ("NaT"): Valid
// reports false, real-valued queries return NaN, integer queries return
// zero and ISO returns "NaT". No query panics.
type GTime struct {
	t     time.Time
	res   Resolution
	valid bool
}

// NewGTime wraps an absolute time at the given resolution. ResDefault
// keeps nanosecond precision. The stored instant is truncated to the
// resolution.
func NewGTime(t time.Time, res Resolution) *GTime {
	if res == ResDefault {
		res = ResNano
	}
	return &GTime{
		t:     t.UTC().Truncate(time.Duration(res)),
		res:   res,
		valid: true,
	}
}

// ParseGTime builds a GTime from an ISO 8601 timestamp such as
// "2020-07-02", "2020-07-02T06:30" or "2020-07-02T06:30:15.123Z".
// With ResDefault the resolution is deduced from the precision of the
// string (a bare date gives day resolution, fractional digits give
// milli/micro/nanoseconds); an explicit resolution overrides that and
// truncates the instant. Input that does not parse yields the invalid
// instant with one second resolution.
func ParseGTime(s string, res Resolution) *GTime {
	t, inferred, ok := parseTimestamp(s)
	if !ok {
		return &GTime{res: ResSecond}
	}
	if res == ResDefault {
		res = inferred
	}
	return NewGTime(t, res)
}

// GTimeFromGPST builds a GTime from a GPS week number and seconds of
// week. The fractional part of the seconds is kept to the nanosecond;
// the resolution is the coarsest unit that represents it exactly
// (seconds for a whole-second input).
func GTimeFromGPST(week int, sec float64) *GTime {
	whole, frac := math.Modf(sec)
	ns := int64(math.Round(frac * 1e9))
	t := GPST0.Add(time.Duration(week) * 7 * 24 * time.Hour).
		Add(time.Duration(int64(whole)) * time.Second).
		Add(time.Duration(ns))

	res := ResNano
	switch {
	case ns == 0:
		res = ResSecond
	case ns%1e6 == 0:
		res = ResMilli
	case ns%1e3 == 0:
		res = ResMicro
	}
	return NewGTime(t, res)
}

// GTimeFromFYear builds a GTime from a fractional year, e.g. 2020.5.
// The fractional part spans the 365 or 366 days of the truncated year
// and is decomposed into whole days, whole seconds and a nanosecond
// remainder, added in sequence so rounding errors do not compound.
func GTimeFromFYear(fy float64) *GTime {
	y, frac := math.Modf(fy)
	year := int(y)
	days := 365.0
	if isLeapYear(year) {
		days = 366.0
	}
	d, fday := math.Modf(frac * days)
	s, fsec := math.Modf(fday * DaySec)
	t := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(int64(d)) * 24 * time.Hour).
		Add(time.Duration(int64(s)) * time.Second).
		Add(time.Duration(int64(math.Round(fsec * 1e9))))
	return NewGTime(t, ResNano)
}

// The criterion is divisible by 4 and, either not divisible by 100 or
// divisible by 400.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

//-------------------------------------------------------------------
// Accessors
//-------------------------------------------------------------------

// Valid reports whether the instant holds an actual time.
func (p *GTime) Valid() bool {
	return p.valid
}

// Time returns the stored instant (UTC). The zero time for the invalid
// instant.
func (p *GTime) Time() time.Time {
	return p.t
}

// Res returns the declared resolution.
func (p *GTime) Res() Resolution {
	return p.res
}

// Equal reports whether the stored instants are equal. Resolution does
// not participate. Invalid instants compare unequal to everything,
// including each other.
func (p *GTime) Equal(b *GTime) bool {
	return p.valid && b.valid && p.t.Equal(b.t)
}

func (p *GTime) Before(b *GTime) bool {
	return p.valid && b.valid && p.t.Before(b.t)
}

func (p *GTime) After(b *GTime) bool {
	return p.valid && b.valid && p.t.After(b.t)
}

//-------------------------------------------------------------------
// Calendar queries
//-------------------------------------------------------------------

func (p *GTime) Year() int {
	if !p.valid {
		return 0
	}
	return p.t.Year()
}

// Date returns the instant truncated to its day (midnight UTC).
func (p *GTime) Date() time.Time {
	if !p.valid {
		return time.Time{}
	}
	y, m, d := p.t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TimeOfDay returns the duration since midnight UTC.
func (p *GTime) TimeOfDay() time.Duration {
	if !p.valid {
		return 0
	}
	return p.t.Sub(p.Date())
}

func (p *GTime) IsLeapYear() bool {
	return p.valid && isLeapYear(p.t.Year())
}

// DayOfYear returns the 1-based day count within the year.
func (p *GTime) DayOfYear() int {
	if !p.valid {
		return 0
	}
	return p.t.YearDay()
}

// SecondsOfDay returns the whole seconds elapsed since midnight UTC.
func (p *GTime) SecondsOfDay() int {
	if !p.valid {
		return 0
	}
	h, m, s := p.t.Clock()
	return h*3600 + m*60 + s
}

// FractionOfSeconds returns the sub-second part of the instant in [0, 1).
func (p *GTime) FractionOfSeconds() float64 {
	if !p.valid {
		return math.NaN()
	}
	return float64(p.t.Nanosecond()) / 1e9
}

//-------------------------------------------------------------------
// Geodetic representations
//-------------------------------------------------------------------

// GPST returns the GPS week number and the seconds of week. The seconds
// carry decimal digits only down to the declared resolution (0, 3, 6 or
// 9 digits), rounded half to even. Instants before the GPS epoch get
// the (negative) week containing them and a non-negative second count.
func (p *GTime) GPST() (int, float64) {
	if !p.valid {
		return 0, math.NaN()
	}
	d := p.t.Sub(GPST0)
	weekDur := 7 * 24 * time.Hour
	week := d / weekDur
	rem := d % weekDur
	if rem < 0 {
		week--
		rem += weekDur
	}
	sec := float64(rem/time.Second) + float64(rem%time.Second)/1e9
	return int(week), roundTo(sec, p.res.decimals())
}

// FYear returns the fractional year at day granularity, rounded to 8
// decimal places. The numerator is the days elapsed since January 1, so
// that FYear inverts GTimeFromFYear exactly at day boundaries.
func (p *GTime) FYear() float64 {
	if !p.valid {
		return math.NaN()
	}
	days := 365.0
	if p.IsLeapYear() {
		days = 366.0
	}
	return float64(p.Year()) + roundTo(float64(p.DayOfYear()-1)/days, 8)
}

// YD returns (year, day of year, seconds of day) with the sub-second
// part included in the seconds.
func (p *GTime) YD() (int, int, float64) {
	if !p.valid {
		return 0, 0, math.NaN()
	}
	return p.Year(), p.DayOfYear(), float64(p.SecondsOfDay()) + p.FractionOfSeconds()
}

// J2000 returns the whole seconds since the J2000 epoch (noon
// 2000/1/1) and the remaining fraction of a second quantized to the
// declared resolution. The whole part truncates toward zero, so for
// instants before the epoch the fraction is negative and
// sec + frac always reconstructs the offset.
func (p *GTime) J2000() (int64, float64) {
	if !p.valid {
		return 0, math.NaN()
	}
	d := p.t.Sub(J2000)
	sec := int64(d / time.Second)
	rem := (d % time.Second).Truncate(time.Duration(p.res))
	return sec, float64(rem) / 1e9
}

// MJD returns the Modified Julian Date.
func (p *GTime) MJD() float64 {
	if !p.valid {
		return math.NaN()
	}
	return MJDJ2000 + p.t.Sub(J2000).Seconds()/DaySec
}

// JD returns the Julian Date.
func (p *GTime) JD() float64 {
	if !p.valid {
		return math.NaN()
	}
	return JDMJD0 + p.MJD()
}

// ISO returns the ISO 8601 representation at the declared resolution,
// or "NaT" for the invalid instant.
func (p *GTime) ISO() string {
	if !p.valid {
		return "NaT"
	}
	switch p.res {
	case ResDay:
		return p.t.Format("2006-01-02")
	case ResHour:
		return p.t.Format("2006-01-02T15Z")
	case ResMinute:
		return p.t.Format("2006-01-02T15:04Z")
	case ResSecond:
		return p.t.Format("2006-01-02T15:04:05Z")
	case ResMilli:
		return p.t.Format("2006-01-02T15:04:05.000Z")
	case ResMicro:
		return p.t.Format("2006-01-02T15:04:05.000000Z")
	}
	return p.t.Format("2006-01-02T15:04:05.000000000Z")
}

//-------------------------------------------------------------------
// Timestamp parsing
//-------------------------------------------------------------------

var isoLayouts = []struct {
	layout string
	res    Resolution
}{
	{"2006-01-02T15:04:05", ResSecond},
	{"2006-01-02T15:04", ResMinute},
	{"2006-01-02T15", ResHour},
	{"2006-01-02", ResDay},
}

// parseTimestamp parses an ISO 8601 timestamp without a zone offset
// (a trailing Z is accepted) and reports the resolution matching the
// precision of the string.
func parseTimestamp(s string) (time.Time, Resolution, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "Z")

	// Split off fractional seconds, if any, to count their digits.
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s, frac = s[:i], s[i+1:]
		if frac == "" {
			return time.Time{}, ResDefault, false
		}
	}

	for _, l := range isoLayouts {
		t, err := time.Parse(l.layout, s)
		if err != nil {
			continue
		}
		if frac == "" {
			return t, l.res, true
		}
		if l.res != ResSecond {
			// A fraction is only valid after full seconds.
			return time.Time{}, ResDefault, false
		}
		ns, res, ok := parseFraction(frac)
		if !ok {
			return time.Time{}, ResDefault, false
		}
		return t.Add(time.Duration(ns)), res, true
	}
	return time.Time{}, ResDefault, false
}

// parseFraction converts fractional-second digits to nanoseconds and
// the resolution implied by the digit count. Digits beyond the ninth
// are dropped.
func parseFraction(frac string) (int64, Resolution, bool) {
	if len(frac) > 9 {
		frac = frac[:9]
	}
	var ns int64
	for _, c := range frac {
		if c < '0' || c > '9' {
			return 0, ResDefault, false
		}
		ns = ns*10 + int64(c-'0')
	}
	for i := len(frac); i < 9; i++ {
		ns *= 10
	}
	switch {
	case len(frac) <= 3:
		return ns, ResMilli, true
	case len(frac) <= 6:
		return ns, ResMicro, true
	}
	return ns, ResNano, true
}
