package finance

import (
	"time"

	"github.com/fintrack-ph/backend/internal/types"
)

// Report timeframes.
const (
	Timeframe1Month  = "1month"
	Timeframe3Months = "3months"
	Timeframe6Months = "6months"
	Timeframe1Year   = "1year"
)

// TimeframeStart returns the first day of a report timeframe ending now and
// the normalized timeframe name. Unknown timeframes default to six months.
func TimeframeStart(now time.Time, timeframe string) (types.Date, string) {
	today := types.DateOf(now)

	switch timeframe {
	case Timeframe1Month:
		return types.DateOf(today.Time().AddDate(0, -1, 0)), timeframe
	case Timeframe3Months:
		return types.DateOf(today.Time().AddDate(0, -3, 0)), timeframe
	case Timeframe1Year:
		return types.DateOf(today.Time().AddDate(-1, 0, 0)), timeframe
	default:
		return types.DateOf(today.Time().AddDate(0, -6, 0)), Timeframe6Months
	}
}
