package timewords

import "math"

// Minute thresholds for the year buckets. A year is treated as exactly
// 365 days; leap years are deliberately not corrected for, since the
// output is an approximation to begin with.
const (
	minutesInYear              = 525600
	minutesInQuarterYear       = 131400
	minutesInThreeQuartersYear = 394200
)

// maxSeconds bounds the absolute duration so float-to-int conversion
// cannot overflow.
const maxSeconds = float64(1 << 62)

// roundHalfUp rounds to the nearest integer with .5 rounding up.
// Inputs are non-negative here, so this matches rounding half away
// from zero.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Classify maps a duration in seconds onto a phrase bucket and count.
// The sign of the duration is ignored. includeSeconds selects
// second-level granularity for durations under about a minute; when
// false the sub-minute range collapses to "less than a minute".
//
// Classification is an ordered chain of threshold tests over the
// duration rounded to whole minutes; the first matching rule wins.
// It is deterministic, has no side effects, and is total over all
// finite inputs. Non-finite input returns ErrInvalidInput.
func Classify(seconds float64, includeSeconds bool) (Phrase, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return Phrase{}, ErrInvalidInput
	}

	d := math.Abs(seconds)
	// Clamp so the int conversions below stay defined for any finite
	// float. Anything near this bound renders as an absurd year count
	// either way.
	if d > maxSeconds {
		d = maxSeconds
	}
	mins := roundHalfUp(d / 60)
	secs := roundHalfUp(d)

	switch {
	case mins <= 1:
		if !includeSeconds {
			if mins == 0 {
				return Phrase{LessThanXMinutes, 1}, nil
			}
			return Phrase{XMinutes, mins}, nil
		}
		switch {
		case secs <= 4:
			return Phrase{LessThanXSeconds, 5}, nil
		case secs <= 9:
			return Phrase{LessThanXSeconds, 10}, nil
		case secs <= 19:
			return Phrase{LessThanXSeconds, 20}, nil
		case secs <= 39:
			return Phrase{HalfAMinute, 20}, nil
		case secs <= 59:
			return Phrase{LessThanXMinutes, 1}, nil
		default:
			return Phrase{XMinutes, 1}, nil
		}
	case mins <= 44:
		return Phrase{XMinutes, mins}, nil
	case mins <= 89:
		return Phrase{AboutXHours, 1}, nil
	case mins <= 1439:
		return Phrase{AboutXHours, roundHalfUp(float64(mins) / 60)}, nil
	case mins <= 2519:
		return Phrase{XDays, 1}, nil
	case mins <= 43199:
		return Phrase{XDays, roundHalfUp(float64(mins) / 1440)}, nil
	case mins <= 86399:
		return Phrase{AboutXMonths, roundHalfUp(float64(mins) / 43200)}, nil
	case mins <= minutesInYear:
		return Phrase{XMonths, roundHalfUp(float64(mins) / 43200)}, nil
	}

	years := mins / minutesInYear
	remainder := mins % minutesInYear
	switch {
	case remainder < minutesInQuarterYear:
		return Phrase{AboutXYears, years}, nil
	case remainder < minutesInThreeQuartersYear:
		return Phrase{OverXYears, years}, nil
	default:
		return Phrase{AlmostXYears, years + 1}, nil
	}
}
