// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.5.16
//

package geokit

import "time"

const (
	PI      = 3.1415926535897932 // Pi
	DaySec  = 86400.0            // Seconds per day
	WeekSec = 604800.0           // Seconds per GPS week

	MJDJ2000 = 51544.5   // MJD of the J2000 epoch (2000/1/1 12:00:00)
	JDMJD0   = 2400000.5 // JD of the MJD origin (1858/11/17 00:00:00)
)

var (
	GPST0 = time.Date(1980, 1, 6, 0, 0, 0, 0, time.UTC) // GPS time starts from 1980/1/6 00:00:00
	J2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
)
