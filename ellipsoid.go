// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.5.16
//

package geokit

import (
	"golang.org/x/exp/slices"
)

// Defining parameters of the named reference ellipsoids.
// Each entry is (major semi-axis [m], inverse flattening).
// An inverse flattening of 0 denotes a perfect sphere.
var ellipsoids = map[string][2]float64{
	"WGS84":   {6378137.0, 298.257223563},
	"PZ90":    {6378136.0, 298.257839303},
	"GRS80":   {6378137.0, 298.257222101},
	"Bessel":  {6377397.155, 299.1528128},
	"Hayford": {6378388.0, 297.0}, // International 1924
	"WGS72":   {6378135.0, 298.26},
	"sphere":  {6370997.0, 0.0},
}

// Ellipsoid holds the parameters of a reference ellipsoid. The derived
// parameters are computed once at construction and the struct is not
// meant to be modified afterwards.
type Ellipsoid struct {
	A    float64 // Major semi-axis [m]
	InvF float64 // Inverse flattening (0 for a sphere)
	F    float64 // Flattening
	B    float64 // Minor semi-axis [m]
	E12  float64 // First eccentricity squared
	E22  float64 // Second eccentricity squared
}

// NewEllipsoid returns the named ellipsoid with all derived parameters
// filled in. An unknown name silently falls back to WGS84.
func NewEllipsoid(name string) *Ellipsoid {
	d, ok := ellipsoids[name]
	if !ok {
		d = ellipsoids["WGS84"]
	}
	e := &Ellipsoid{A: d[0], InvF: d[1]}
	if e.InvF != 0 {
		e.F = 1.0 / e.InvF
	}
	e.B = e.A * (1.0 - e.F)
	e.E12 = 2.0*e.F - e.F*e.F
	e.E22 = e.E12 / (1.0 - e.E12)
	return e
}

// EllipsoidNames returns the names of the registered ellipsoids in sorted order.
func EllipsoidNames() []string {
	names := make([]string, 0, len(ellipsoids))
	for n := range ellipsoids {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
