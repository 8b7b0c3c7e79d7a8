// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.5.23
//

package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	m "github.com/mkhts/geokit"
)

func main() {

	// Parse command line arguments
	args, err := parseArgs()
	if err != nil {
		m.PrintE(err)
		flag.Usage()
		os.Exit(1)
	}

	// Run the conversion
	if err := run(args); err != nil {
		m.PrintE(err)
		os.Exit(1)
	}
}

type cmdOpt struct {
	ellName string
	llh     llhOpt
	xyz     xyzOpt
	az      float64
	ts      string
	unit    string
	gpst    gpstOpt
	fy      float64
	version bool
}

func parseArgs() (a cmdOpt, err error) {
	flag.Usage = func() {
		m.PrintA(`
[Usage]
	%s [Options] -llh  "lat lon hei"        geodetic [deg, m] to cartesian, with the local radii and arc length
	%s [Options] -xyz  "x y z"              cartesian [m] to geodetic
	%s [Options] -t    "2020-07-02T06:30Z"  timestamp to the geodetic time representations
	%s [Options] -gpst "week sec"           GPS time to the geodetic time representations
	%s [Options] -fy   2020.5               fractional year to the geodetic time representations

[Options]
`, filepath.Base(os.Args[0]), filepath.Base(os.Args[0]), filepath.Base(os.Args[0]), filepath.Base(os.Args[0]), filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.StringVar(&a.ellName, "e", "WGS84", "Reference ellipsoid name. One of "+strings.Join(m.EllipsoidNames(), ", ")+". Unknown names fall back to WGS84.")
	flag.Var(&a.llh, "llh", "Geodetic coordinates. Enclose in quotes like -llh \"35.731012 139.739691 80.33\"")
	flag.Var(&a.xyz, "xyz", "Cartesian coordinates. Enclose in quotes like -xyz \"-3961905.0 3348994.2 3698211.8\"")
	flag.Float64Var(&a.az, "az", 0, "Azimuth [deg] for the vertical section radius. Only meaningful with -llh.")
	flag.StringVar(&a.ts, "t", "", "Timestamp, ISO 8601 like 2020-07-02T06:30:15.123Z")
	flag.StringVar(&a.unit, "r", "", "Resolution unit for -t. One of D, h, m, s, ms, us, ns. Omit to deduce from the timestamp.")
	flag.Var(&a.gpst, "gpst", "GPS week and seconds of week. Enclose in quotes like -gpst \"2190 432000.5\"")
	flag.Float64Var(&a.fy, "fy", math.NaN(), "Fractional year like 2020.5")
	flag.BoolVar(&a.version, "version", false, "Print the library version and exit.")
	var dbg int
	flag.IntVar(&dbg, "x", 0, "Debug information display. Specify level value. 0(OFF), 1(display), 2(detailed display)")
	flag.Parse()
	m.DBG_ = dbg

	if a.version {
		return
	}
	n := 0
	if a.llh.set {
		n++
	}
	if a.xyz.set {
		n++
	}
	if a.ts != "" {
		n++
	}
	if a.gpst.set {
		n++
	}
	if !math.IsNaN(a.fy) {
		n++
	}
	if n != 1 {
		return a, fmt.Errorf("specify exactly one of -llh, -xyz, -t, -gpst, -fy")
	}
	if a.unit != "" && m.ResolutionFromUnit(a.unit) == m.ResDefault {
		return a, fmt.Errorf("unknown resolution unit: %s", a.unit)
	}
	return
}

func run(args cmdOpt) error {
	if args.version {
		fmt.Println(m.Version())
		return nil
	}

	ell := m.NewEllipsoid(args.ellName)
	if !slices.Contains(m.EllipsoidNames(), args.ellName) {
		m.PrintD(1, "unknown ellipsoid %q, using WGS84\n", args.ellName)
	}
	m.PrintD(1, "ellipsoid: a=%.4f 1/f=%.9f b=%.4f e1^2=%.12f\n", ell.A, ell.InvF, ell.B, ell.E12)

	switch {
	case args.llh.set:
		pt := m.NewPoint(m.ToRad(args.llh.lat), m.ToRad(args.llh.lon), args.llh.hei, ell)
		printPoint(pt, m.ToRad(args.az))
	case args.xyz.set:
		pt := args.xyz.pos.ToPoint(ell)
		fmt.Printf("lat lon [deg], hei [m]: %14.9f %14.9f %10.4f\n", m.ToDeg(pt.Lat), m.ToDeg(pt.Lon), pt.Hei)
	case args.ts != "":
		gt := m.ParseGTime(args.ts, m.ResolutionFromUnit(args.unit))
		if !gt.Valid() {
			return fmt.Errorf("unparseable timestamp: %s", args.ts)
		}
		printTime(gt)
	case args.gpst.set:
		printTime(m.GTimeFromGPST(args.gpst.week, args.gpst.sec))
	default:
		printTime(m.GTimeFromFYear(args.fy))
	}
	return nil
}

func printPoint(pt *m.Point, az float64) {
	xyz := pt.Cartesian()
	fmt.Printf("x y z [m]            : %14.4f %14.4f %14.4f\n", xyz.X, xyz.Y, xyz.Z)
	fmt.Printf("meridian radius [m]  : %14.4f\n", pt.MeridianRadius())
	fmt.Printf("prime vertical [m]   : %14.4f\n", pt.PrimeVerticalRadius())
	fmt.Printf("Gauss radius [m]     : %14.4f\n", pt.GaussRadius())
	fmt.Printf("parallel radius [m]  : %14.4f\n", pt.ParallelRadius())
	fmt.Printf("vertical section [m] : %14.4f (azimuth %.4f deg)\n", pt.VerticalSectionRadius(az), m.ToDeg(az))
	fmt.Printf("meridian arc [m]     : %14.4f\n", pt.MeridianArc())
}

func printTime(gt *m.GTime) {
	week, sec := gt.GPST()
	year, doy, sod := gt.YD()
	j2s, j2f := gt.J2000()
	fmt.Printf("ISO (resolution %s)   : %s\n", gt.Res(), gt.ISO())
	fmt.Printf("GPST week, sec       : %d %.*f\n", week, decimalsOf(gt.Res()), sec)
	fmt.Printf("fractional year      : %.8f\n", gt.FYear())
	fmt.Printf("year, doy, sec of day: %d %d %.9f\n", year, doy, sod)
	fmt.Printf("JD                   : %.8f\n", gt.JD())
	fmt.Printf("MJD                  : %.8f\n", gt.MJD())
	fmt.Printf("J2000 sec, fraction  : %d %.9f\n", j2s, j2f)
	fmt.Printf("leap year            : %v\n", gt.IsLeapYear())
}

func decimalsOf(r m.Resolution) int {
	switch {
	case r >= m.ResSecond:
		return 0
	case r >= m.ResMilli:
		return 3
	case r >= m.ResMicro:
		return 6
	}
	return 9
}

// ------------------------------------
// For command argument parsing
// ------------------------------------

// Geodetic coordinates (for command arguments)
type llhOpt struct {
	lat float64 // [deg]
	lon float64 // [deg]
	hei float64 // [m]
	set bool
}

func (p *llhOpt) Set(s string) error {
	f := strings.Fields(s)
	if len(f) != 3 {
		return fmt.Errorf("need 3 values, got %d", len(f))
	}
	var err error
	if p.lat, err = strconv.ParseFloat(f[0], 64); err != nil {
		return err
	}
	if p.lon, err = strconv.ParseFloat(f[1], 64); err != nil {
		return err
	}
	if p.hei, err = strconv.ParseFloat(f[2], 64); err != nil {
		return err
	}
	p.set = true
	return nil
}

func (p *llhOpt) String() string {
	return ""
}

// Cartesian coordinates (for command arguments). Tracks whether the
// flag was given at all, so "0 0 0" is a usable input.
type xyzOpt struct {
	pos m.PosXYZ
	set bool
}

func (p *xyzOpt) Set(s string) error {
	if err := p.pos.Set(s); err != nil {
		return err
	}
	p.set = true
	return nil
}

func (p *xyzOpt) String() string {
	return ""
}

// GPS week and seconds of week (for command arguments)
type gpstOpt struct {
	week int
	sec  float64
	set  bool
}

func (p *gpstOpt) Set(s string) error {
	f := strings.Fields(s)
	if len(f) != 2 {
		return fmt.Errorf("need 2 values, got %d", len(f))
	}
	var err error
	if p.week, err = strconv.Atoi(f[0]); err != nil {
		return err
	}
	if p.sec, err = strconv.ParseFloat(f[1], 64); err != nil {
		return err
	}
	p.set = true
	return nil
}

func (p *gpstOpt) String() string {
	return ""
}
