package util

import "time"

// Streak days are counted in the site's home timezone so a late-night
// practice session lands on the day the student actually studied.
var streakLocation *time.Location

func init() {
	var err error
	streakLocation, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		streakLocation = time.FixedZone("IST", 5*60*60+30*60)
	}
}

// DayOf truncates t to its calendar day in the streak timezone. The result
// is midnight UTC of that day, which is how DATE columns round-trip.
func DayOf(t time.Time) time.Time {
	y, m, d := t.In(streakLocation).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func PrevDay(day time.Time) time.Time {
	return day.AddDate(0, 0, -1)
}
