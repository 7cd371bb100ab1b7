package timewords

// Bucket identifies one of the fixed set of approximation phrases a
// duration can classify into. The identifiers double as the phrase keys
// in locale files.
type Bucket string

const (
	LessThanXSeconds Bucket = "less_than_x_seconds"
	HalfAMinute      Bucket = "half_a_minute"
	LessThanXMinutes Bucket = "less_than_x_minutes"
	XMinutes         Bucket = "x_minutes"
	AboutXHours      Bucket = "about_x_hours"
	XDays            Bucket = "x_days"
	AboutXMonths     Bucket = "about_x_months"
	XMonths          Bucket = "x_months"
	AboutXYears      Bucket = "about_x_years"
	OverXYears       Bucket = "over_x_years"
	AlmostXYears     Bucket = "almost_x_years"
)

// Buckets returns every bucket a classification can produce, in
// ascending duration order. Renderers must cover all of them.
func Buckets() []Bucket {
	return []Bucket{
		LessThanXSeconds,
		HalfAMinute,
		LessThanXMinutes,
		XMinutes,
		AboutXHours,
		XDays,
		AboutXMonths,
		XMonths,
		AboutXYears,
		OverXYears,
		AlmostXYears,
	}
}

// Phrase is the result of classifying a duration: a bucket plus the
// integer count interpolated into the rendered text. Count is always
// >= 0. A Phrase has no identity beyond its two fields and is never
// mutated after creation.
type Phrase struct {
	Bucket Bucket
	Count  int
}
