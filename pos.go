// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.5.23
//

package geokit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//-------------------------------------------------------------------
// PosXYZ
//-------------------------------------------------------------------

// PosXYZ is an earth-centered earth-fixed cartesian position [m].
type PosXYZ struct {
	X float64
	Y float64
	Z float64
}

func NewPosXYZ(x, y, z float64) *PosXYZ {
	return &PosXYZ{
		X: x,
		Y: y,
		Z: z,
	}
}

// ToPoint converts the cartesian position to a geodetic point on the
// given ellipsoid (nil selects WGS84). The conversion is Bowring's
// single-step reduced-latitude method, not an iteration to convergence:
// accurate to well below a millimeter for terrestrial heights, degrading
// at extreme heights and near the poles.
func (pos *PosXYZ) ToPoint(ell *Ellipsoid) *Point {
	if ell == nil {
		ell = NewEllipsoid("WGS84")
	}

	p := math.Sqrt(pos.X*pos.X + pos.Y*pos.Y)
	reduced := math.Atan2(pos.Z, (1.0-ell.F)*p)
	sinr := math.Sin(reduced)
	cosr := math.Cos(reduced)

	pt := &Point{Ell: ell}
	pt.Lat = math.Atan2(pos.Z+ell.E22*ell.B*sinr*sinr*sinr,
		p-ell.A*ell.E12*cosr*cosr*cosr)
	pt.Lon = math.Atan2(pos.Y, pos.X)
	pt.Hei = p/math.Cos(pt.Lat) - pt.PrimeVerticalRadius()
	return pt
}

// Read from string
func (pos *PosXYZ) Set(s string) error {
	var err error
	f := strings.Fields(s)
	if len(f) != 3 {
		return fmt.Errorf("need 3 values, got %d", len(f))
	}
	pos.X, err = strconv.ParseFloat(f[0], 64)
	if err != nil {
		return err
	}
	pos.Y, err = strconv.ParseFloat(f[1], 64)
	if err != nil {
		return err
	}
	pos.Z, err = strconv.ParseFloat(f[2], 64)
	if err != nil {
		return err
	}
	return nil
}

// Convert to string
func (pos *PosXYZ) String() string {
	return fmt.Sprintf("%.4f %.4f %.4f", pos.X, pos.Y, pos.Z)
}

//-------------------------------------------------------------------
// Point
//-------------------------------------------------------------------

// Point is a geodetic position on a reference ellipsoid. Angles are in
// radians, the height is in meters above the ellipsoid. All query
// methods are pure functions of the stored coordinates; singular
// latitudes are allowed to produce NaN/Inf rather than being guarded.
type Point struct {
	Lat float64 // Latitude [rad]
	Lon float64 // Longitude [rad]
	Hei float64 // Ellipsoidal height [m]
	Ell *Ellipsoid
}

// NewPoint builds a point from geodetic coordinates. A nil ellipsoid
// selects WGS84.
func NewPoint(lat, lon, hei float64, ell *Ellipsoid) *Point {
	if ell == nil {
		ell = NewEllipsoid("WGS84")
	}
	return &Point{
		Lat: lat,
		Lon: lon,
		Hei: hei,
		Ell: ell,
	}
}

// NewPointXYZ builds a point from cartesian coordinates, deriving the
// geodetic ones immediately. See PosXYZ.ToPoint for the precision bound.
func NewPointXYZ(x, y, z float64, ell *Ellipsoid) *Point {
	pos := PosXYZ{X: x, Y: y, Z: z}
	return pos.ToPoint(ell)
}

// MeridianRadius returns the radius of curvature of the meridian
// section at the point's latitude.
func (pt *Point) MeridianRadius() float64 {
	a := pt.Ell.A
	e12 := pt.Ell.E12
	w2 := 1.0 - e12*SQ(math.Sin(pt.Lat))
	return a * (1.0 - e12) / math.Sqrt(w2*w2*w2)
}

// PrimeVerticalRadius returns the radius of curvature of the prime
// vertical section at the point's latitude.
func (pt *Point) PrimeVerticalRadius() float64 {
	a := pt.Ell.A
	e12 := pt.Ell.E12
	return a / math.Sqrt(1.0-e12*SQ(math.Sin(pt.Lat)))
}

// GaussRadius returns the radius of the osculating (Gauss) sphere, the
// geometric mean of the two principal radii.
func (pt *Point) GaussRadius() float64 {
	return math.Sqrt(pt.MeridianRadius() * pt.PrimeVerticalRadius())
}

// ParallelRadius returns the radius of the parallel circle through the point.
func (pt *Point) ParallelRadius() float64 {
	return pt.PrimeVerticalRadius() * math.Cos(pt.Lat)
}

// VerticalSectionRadius returns the radius of curvature of the normal
// section at the given azimuth [rad] (Euler's formula). Azimuth 0 is
// the meridian direction.
func (pt *Point) VerticalSectionRadius(azimuth float64) float64 {
	mr := pt.MeridianRadius()
	pvr := pt.PrimeVerticalRadius()
	return mr * pvr / (pvr*SQ(math.Cos(azimuth)) + mr*SQ(math.Sin(azimuth)))
}

// MeridianArc returns the length [m] of the meridian arc from the
// equator to the point's latitude, evaluated as an 8th-order
// trigonometric series in the first eccentricity squared. Odd terms of
// the series are zero.
func (pt *Point) MeridianArc() float64 {
	a := pt.Ell.A
	e12 := pt.Ell.E12

	m := make([]float64, 9)
	m[0] = 1.0 + (3.0/4.0+(45.0/64.0+(175.0/256.0+11025.0/16384.0*e12)*e12)*e12)*e12
	m[2] = -(3.0/4.0 + (15.0/16.0+(525.0/512.0+2205.0/2048.0*e12)*e12)*e12) * e12 / 2.0
	m[4] = (15.0/64.0 + (105.0/256.0+2205.0/4096.0*e12)*e12) * e12 * e12 / 4.0
	m[6] = -(35.0/512.0 + 315.0/2048.0*e12) * e12 * e12 * e12 / 6.0
	m[8] = 315.0 / 16384.0 * e12 * e12 * e12 * e12 / 8.0

	// Sine factors; the zeroth entry is the latitude itself.
	s := make([]float64, 9)
	s[0] = pt.Lat
	for i := 1; i < 9; i++ {
		s[i] = math.Sin(float64(i) * pt.Lat)
	}

	return a * (1.0 - e12) * mat.Dot(mat.NewVecDense(9, m), mat.NewVecDense(9, s))
}

// Cartesian returns the earth-centered cartesian coordinates of the point.
func (pt *Point) Cartesian() PosXYZ {
	e12 := pt.Ell.E12
	pvr := pt.PrimeVerticalRadius()
	p := (pvr + pt.Hei) * math.Cos(pt.Lat)
	return PosXYZ{
		X: p * math.Cos(pt.Lon),
		Y: p * math.Sin(pt.Lon),
		Z: (pvr*(1.0-e12) + pt.Hei) * math.Sin(pt.Lat),
	}
}

// Convert to string
func (pt *Point) String() string {
	return fmt.Sprintf("%.8f %.8f %.4f", pt.Lat, pt.Lon, pt.Hei)
}
