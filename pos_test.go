// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.5.23
//

package geokit

import (
	"math"
	"testing"
)

func TestCartesianKnownValues(t *testing.T) {
	ell := NewEllipsoid("WGS84")
	tests := []struct {
		name          string
		lat, lon, hei float64
		want          PosXYZ
		tol           float64
	}{
		{
			name: "equator prime meridian",
			want: PosXYZ{X: ell.A, Y: 0, Z: 0},
			tol:  1e-9,
		},
		{
			name: "north pole",
			lat:  ToRad(90),
			want: PosXYZ{X: 0, Y: 0, Z: ell.B},
			tol:  1e-6,
		},
		{
			name: "equator 90E with height",
			lon:  ToRad(90),
			hei:  1000,
			want: PosXYZ{X: 0, Y: ell.A + 1000, Z: 0},
			tol:  1e-6,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPoint(tt.lat, tt.lon, tt.hei, ell).Cartesian()
			if math.Abs(got.X-tt.want.X) > tt.tol ||
				math.Abs(got.Y-tt.want.Y) > tt.tol ||
				math.Abs(got.Z-tt.want.Z) > tt.tol {
				t.Errorf("Cartesian() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCartesianRoundTrip(t *testing.T) {
	ell := NewEllipsoid("WGS84")
	angTol := ToRad(1e-6) // 1e-6 degrees
	heiTol := 1e-3        // 1 mm

	for latDeg := -89.0; latDeg <= 89.0; latDeg += 11.125 {
		for lonDeg := -180.0; lonDeg <= 180.0; lonDeg += 45.0 {
			for _, hei := range []float64{-100, 0, 10000} {
				pt := NewPoint(ToRad(latDeg), ToRad(lonDeg), hei, ell)
				xyz := pt.Cartesian()
				back := NewPointXYZ(xyz.X, xyz.Y, xyz.Z, ell)
				if math.Abs(back.Lat-pt.Lat) > angTol {
					t.Fatalf("lat %.3f lon %.3f hei %.0f: lat = %.12f, want %.12f",
						latDeg, lonDeg, hei, back.Lat, pt.Lat)
				}
				dLon := math.Abs(back.Lon - pt.Lon)
				if dLon > PI { // -180 and 180 are the same meridian
					dLon = 2*PI - dLon
				}
				if dLon > angTol {
					t.Fatalf("lat %.3f lon %.3f hei %.0f: lon = %.12f, want %.12f",
						latDeg, lonDeg, hei, back.Lon, pt.Lon)
				}
				if math.Abs(back.Hei-pt.Hei) > heiTol {
					t.Fatalf("lat %.3f lon %.3f hei %.0f: hei = %.6f, want %.6f",
						latDeg, lonDeg, hei, back.Hei, hei)
				}
			}
		}
	}
}

func TestRadiiAtEquator(t *testing.T) {
	for _, name := range EllipsoidNames() {
		t.Run(name, func(t *testing.T) {
			ell := NewEllipsoid(name)
			pt := NewPoint(0, 0, 0, ell)
			mr := pt.MeridianRadius()
			pvr := pt.PrimeVerticalRadius()
			if ell.F > 0 && !(mr < pvr) {
				t.Errorf("M(0) = %v not < N(0) = %v", mr, pvr)
			}
			if ell.F == 0 && mr != pvr {
				t.Errorf("sphere: M(0) = %v != N(0) = %v", mr, pvr)
			}
			if pvr != ell.A {
				t.Errorf("N(0) = %v, want a = %v", pvr, ell.A)
			}
		})
	}
}

func TestGaussRadius(t *testing.T) {
	ell := NewEllipsoid("WGS84")
	for latDeg := -90.0; latDeg <= 90.0; latDeg += 15.0 {
		pt := NewPoint(ToRad(latDeg), 0, 0, ell)
		want := math.Sqrt(pt.MeridianRadius() * pt.PrimeVerticalRadius())
		if got := pt.GaussRadius(); got != want {
			t.Errorf("lat %v: GaussRadius() = %v, want %v", latDeg, got, want)
		}
	}
}

func TestParallelRadius(t *testing.T) {
	ell := NewEllipsoid("WGS84")
	pt := NewPoint(ToRad(60), 0, 0, ell)
	want := pt.PrimeVerticalRadius() * 0.5 // cos 60deg
	if got := pt.ParallelRadius(); math.Abs(got-want) > 1e-6 {
		t.Errorf("ParallelRadius() = %v, want %v", got, want)
	}
}

func TestVerticalSectionRadius(t *testing.T) {
	ell := NewEllipsoid("WGS84")
	pt := NewPoint(ToRad(35), 0, 0, ell)
	if got, want := pt.VerticalSectionRadius(0), pt.MeridianRadius(); relDiff(got, want) > 1e-12 {
		t.Errorf("R(0) = %v, want M = %v", got, want)
	}
	if got, want := pt.VerticalSectionRadius(PI/2), pt.PrimeVerticalRadius(); relDiff(got, want) > 1e-12 {
		t.Errorf("R(90deg) = %v, want N = %v", got, want)
	}
}

func TestMeridianArc(t *testing.T) {
	ell := NewEllipsoid("WGS84")
	tests := []struct {
		name   string
		latDeg float64
		want   float64 // published WGS84 meridian distances [m]
	}{
		{"equator", 0, 0},
		{"30 degrees", 30, 3320113.39794},
		{"45 degrees", 45, 4984944.37798},
		{"quarter meridian", 90, 10001965.7292},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt := NewPoint(ToRad(tt.latDeg), 0, 0, ell)
			if got := pt.MeridianArc(); math.Abs(got-tt.want) > 1e-3 {
				t.Errorf("MeridianArc() = %.6f, want %.6f", got, tt.want)
			}
		})
	}
}

func TestMeridianArcSphere(t *testing.T) {
	ell := NewEllipsoid("sphere")
	for latDeg := 15.0; latDeg <= 90.0; latDeg += 15.0 {
		lat := ToRad(latDeg)
		pt := NewPoint(lat, 0, 0, ell)
		want := ell.A * lat
		if got := pt.MeridianArc(); math.Abs(got-want) > 1e-6 {
			t.Errorf("lat %v: MeridianArc() = %v, want R*lat = %v", latDeg, got, want)
		}
	}
}

func TestMeridianArcNegativeLatitude(t *testing.T) {
	ell := NewEllipsoid("WGS84")
	north := NewPoint(ToRad(45), 0, 0, ell).MeridianArc()
	south := NewPoint(ToRad(-45), 0, 0, ell).MeridianArc()
	if north != -south {
		t.Errorf("arc(-45) = %v, want %v", south, -north)
	}
}

func TestNilEllipsoidDefaultsToWGS84(t *testing.T) {
	pt := NewPoint(0, 0, 0, nil)
	if pt.Ell == nil || pt.Ell.A != 6378137.0 {
		t.Fatalf("nil ellipsoid not defaulted to WGS84: %+v", pt.Ell)
	}
	pt2 := NewPointXYZ(6378137.0, 0, 0, nil)
	if math.Abs(pt2.Lat) > 1e-12 || math.Abs(pt2.Hei) > 1e-9 {
		t.Errorf("ToPoint(nil) = %v, want origin of WGS84 equator", pt2)
	}
}

func TestPosXYZSet(t *testing.T) {
	var pos PosXYZ
	if err := pos.Set("-3961905.0 3348994.2 3698211.8"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if pos.X != -3961905.0 || pos.Y != 3348994.2 || pos.Z != 3698211.8 {
		t.Errorf("Set parsed %v", pos)
	}
	if err := pos.Set("1 2"); err == nil {
		t.Error("Set with 2 fields: want error")
	}
	if err := pos.Set("a b c"); err == nil {
		t.Error("Set with non-numeric fields: want error")
	}
}
