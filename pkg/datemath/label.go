package datemath

import "time"

// RelativeLabel renders a human-readable label for a due instant
// relative to now: "Overdue", "Today", "Tomorrow", or a short date
// ("Jun 20", with the year appended when it differs from now's).
// The comparison works on civil days in the parser's timezone.
func (p *Parser) RelativeLabel(due, now time.Time) string {
	dueDay := p.StartOfDay(due)
	nowDay := p.StartOfDay(now)

	switch {
	case dueDay.Before(nowDay):
		return "Overdue"
	case dueDay.Equal(nowDay):
		return "Today"
	case dueDay.Equal(nowDay.AddDate(0, 0, 1)):
		return "Tomorrow"
	}

	if due.In(p.location).Year() != now.In(p.location).Year() {
		return due.In(p.location).Format("Jan 2 2006")
	}
	return due.In(p.location).Format("Jan 2")
}
