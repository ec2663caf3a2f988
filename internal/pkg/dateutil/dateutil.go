package dateutil

import "time"

// KST is the fixed calendar timezone for all date logic. Korea has no DST,
// so a fixed offset is equivalent to the IANA Asia/Seoul zone.
var KST = time.FixedZone("KST", 9*60*60)

const (
	DateLayout     = "2006-01-02"
	MonthDayLayout = "01-02"
)

// StartOfDay truncates t to midnight in KST.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(KST).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, KST)
}

// SameDay reports whether a and b fall on the same KST calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// DaysInclusive returns the number of calendar days in [start, end], counting
// both endpoints. A period starting and ending on the same day is 1 day.
func DaysInclusive(start, end time.Time) int {
	s := StartOfDay(start)
	e := StartOfDay(end)
	return int(e.Sub(s).Hours()/24) + 1
}

// FormatDate renders t as "yyyy-MM-dd" in KST.
func FormatDate(t time.Time) string {
	return t.In(KST).Format(DateLayout)
}

// FormatMonthDay renders t as "MM-dd" in KST, dropping the year component.
func FormatMonthDay(t time.Time) string {
	return t.In(KST).Format(MonthDayLayout)
}

// ParseDate parses a "yyyy-MM-dd" string as a KST midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, KST)
}
