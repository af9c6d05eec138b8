package format

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// datePatterns holds a locale's expansions of the standard date specifiers.
type datePatterns struct {
	short, long, shortTime, longTime, monthDay, yearMonth string
}

var (
	usDates = datePatterns{
		short: "M/d/yyyy", long: "dddd, MMMM d, yyyy",
		shortTime: "h:mm tt", longTime: "h:mm:ss tt",
		monthDay: "MMMM d", yearMonth: "MMMM yyyy",
	}
	gbDates = datePatterns{
		short: "dd/MM/yyyy", long: "dd MMMM yyyy",
		shortTime: "HH:mm", longTime: "HH:mm:ss",
		monthDay: "d MMMM", yearMonth: "MMMM yyyy",
	}
	deDates = datePatterns{
		short: "dd.MM.yyyy", long: "dddd, d. MMMM yyyy",
		shortTime: "HH:mm", longTime: "HH:mm:ss",
		monthDay: "d. MMMM", yearMonth: "MMMM yyyy",
	}
	isoDates = datePatterns{
		short: "yyyy-MM-dd", long: "yyyy-MM-dd",
		shortTime: "HH:mm", longTime: "HH:mm:ss",
		monthDay: "MM-dd", yearMonth: "yyyy-MM",
	}
)

var dateMatcher = language.NewMatcher([]language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Und,
})

func datePatternsFor(tag language.Tag) datePatterns {
	_, idx, conf := dateMatcher.Match(tag)
	if conf == language.No {
		return isoDates
	}
	switch idx {
	case 0:
		return usDates
	case 1, 3:
		return gbDates
	case 2:
		return deDates
	}
	return isoDates
}

// standardDate expands a one-letter date specifier for the engine's locale.
func (e *Engine) standardDate(format string) string {
	d := e.dates
	switch format {
	case "", "d":
		return d.short
	case "D":
		return d.long
	case "t":
		return d.shortTime
	case "T":
		return d.longTime
	case "g":
		return d.short + " " + d.shortTime
	case "G":
		return d.short + " " + d.longTime
	case "f":
		return d.long + " " + d.shortTime
	case "F":
		return d.long + " " + d.longTime
	case "M", "m":
		return d.monthDay
	case "Y", "y":
		return d.yearMonth
	}
	return format
}

// isDateFormat reports whether format should be read as a date pattern.
func isDateFormat(format string) bool {
	if len(format) == 1 {
		return strings.ContainsAny(format, "dDtTgGfFMmYy")
	}
	for _, tok := range []string{"yy", "MM", "dd", "HH", "hh", "mm", "ss"} {
		if strings.Contains(format, tok) {
			return true
		}
	}
	return false
}

func (e *Engine) formatDate(t time.Time, format string) string {
	pattern := e.standardDate(format)

	var b strings.Builder
	rs := []rune(pattern)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch r {
		case '\\':
			if i+1 < len(rs) {
				i++
				b.WriteRune(rs[i])
			}
			continue
		case '\'', '"':
			j := i + 1
			for j < len(rs) && rs[j] != r {
				j++
			}
			b.WriteString(string(rs[i+1 : min(j, len(rs))]))
			i = j
			continue
		case 'y', 'M', 'd', 'H', 'h', 'm', 's', 'f', 't':
		default:
			b.WriteRune(r)
			continue
		}

		n := 1
		for i+n < len(rs) && rs[i+n] == r {
			n++
		}
		i += n - 1
		b.WriteString(dateToken(t, r, n))
	}
	return b.String()
}

func dateToken(t time.Time, r rune, n int) string {
	pad := func(v, width int) string {
		s := strconv.Itoa(v)
		for len(s) < width {
			s = "0" + s
		}
		return s
	}
	hour12 := t.Hour() % 12
	if hour12 == 0 {
		hour12 = 12
	}

	switch r {
	case 'y':
		if n <= 2 {
			return pad(t.Year()%100, n)
		}
		return pad(t.Year(), n)
	case 'M':
		switch {
		case n >= 4:
			return t.Month().String()
		case n == 3:
			return t.Month().String()[:3]
		}
		return pad(int(t.Month()), n)
	case 'd':
		switch {
		case n >= 4:
			return t.Weekday().String()
		case n == 3:
			return t.Weekday().String()[:3]
		}
		return pad(t.Day(), n)
	case 'H':
		return pad(t.Hour(), min(n, 2))
	case 'h':
		return pad(hour12, min(n, 2))
	case 'm':
		return pad(t.Minute(), min(n, 2))
	case 's':
		return pad(t.Second(), min(n, 2))
	case 'f':
		ms := pad(t.Nanosecond()/1e6, 3)
		return ms[:min(n, 3)]
	case 't':
		ampm := "AM"
		if t.Hour() >= 12 {
			ampm = "PM"
		}
		return ampm[:min(n, 2)]
	}
	return ""
}
