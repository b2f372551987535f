package values

import (
	"fmt"
	"math"
	"time"

	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

// oaEpoch is day zero of the OLE Automation date scale.
var oaEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const msPerDay = 24 * 60 * 60 * 1000

// Bounds of the OLE Automation date scale: 0100-01-01 through 9999-12-31.
const (
	minOADate = -657435.0
	maxOADate = 2958466.0 // exclusive
)

// FromOADate converts an OLE Automation date, the on-disk DateTime format, to a UTC time.
// The integer part counts days from 1899-12-30 and the fractional part is the
// time of day. For negative dates the fraction still moves forward in the day,
// so -1.25 is 1899-12-29 06:00. The result is rounded to the millisecond.
// NaN, infinities and values outside [-657435, 2958466) fail with InvalidInputError.
func FromOADate(d float64) (time.Time, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < minOADate || d >= maxOADate {
		return time.Time{}, types.NewInvalidInputError(fmt.Sprintf("OLE Automation date %v is out of range", d), nil)
	}
	days := math.Trunc(d)
	frac := math.Abs(d - days)
	ms := math.Round(frac * msPerDay)
	return oaEpoch.AddDate(0, 0, int(days)).Add(time.Duration(ms) * time.Millisecond), nil
}

// ToOADate converts t to an OLE Automation date. It is the inverse of FromOADate
// at millisecond resolution.
func ToOADate(t time.Time) float64 {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	days := float64((midnight.Unix() - oaEpoch.Unix()) / 86400)
	frac := float64(t.Sub(midnight).Milliseconds()) / msPerDay
	if days < 0 {
		return days - frac
	}
	return days + frac
}
