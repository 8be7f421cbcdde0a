package core

import (
	"math"
	"time"
)

// HoursWorked returns the elapsed time between entry and exit expressed in
// hours, rounded to 2 decimals (half away from zero). The subtraction is
// plain instant arithmetic, so shifts crossing midnight need no special
// handling. A negative result means exit precedes entry; callers must reject
// it instead of storing it.
func HoursWorked(entry, exit time.Time) float64 {
	hours := exit.Sub(entry).Hours()
	return math.Round(hours*100) / 100
}
