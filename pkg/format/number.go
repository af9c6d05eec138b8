package format

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/number"
)

// numberPattern is one parsed section of a numeric format string.
type numberPattern struct {
	prefix, suffix string
	grouping       bool
	minInt         int
	minFrac        int
	maxFrac        int
	percent        bool
	scale          int  // powers of 1000 to divide by
	digits         bool // false for a section of literal text only
}

// numeric is a value to format. Integers keep their exact magnitude in abs
// since float64 loses precision above 2^53.
type numeric struct {
	f     float64
	abs   uint64
	exact bool
}

func (n numeric) plain() string {
	if !n.exact {
		return plainNumber(n.f)
	}
	s := strconv.FormatUint(n.abs, 10)
	if n.f < 0 {
		s = "-" + s
	}
	return s
}

func (e *Engine) formatNumber(n numeric, format string) string {
	f := n.f
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return plainNumber(f)
	}
	if format == "" || strings.EqualFold(format, "General") {
		return n.plain()
	}
	if std, ok := standardNumber(format); ok {
		format = std
	}

	sections := splitSections(format)
	section := sections[0]
	primary, explicitSign := true, false
	switch {
	case f == 0 && len(sections) > 2:
		section, primary = sections[2], false
	case f < 0 && len(sections) > 1:
		section, primary = sections[1], false
		explicitSign = true
	}

	p := parseNumberPattern(section)
	if !p.digits {
		// Negative and zero sections may replace the number with text.
		// A primary section without placeholders is not a number format.
		if primary {
			return n.plain()
		}
		return p.prefix + p.suffix
	}

	neg := f < 0
	var body string
	if n.exact && !p.percent && p.scale == 0 && p.maxFrac == 0 {
		body = e.printer.Sprint(number.Decimal(n.abs, p.options()...))
	} else {
		if p.percent {
			f *= 100
		}
		for i := 0; i < p.scale; i++ {
			f /= 1000
		}
		neg = f < 0
		body = e.printer.Sprint(number.Decimal(math.Abs(f), p.options()...))
	}

	out := p.prefix + body + p.suffix
	if neg && !explicitSign && !isZeroText(body) {
		out = "-" + out
	}
	return out
}

func (p numberPattern) options() []number.Option {
	opts := []number.Option{
		number.MinFractionDigits(p.minFrac),
		number.MaxFractionDigits(p.maxFrac),
	}
	if p.minInt > 1 {
		opts = append(opts, number.MinIntegerDigits(p.minInt))
	}
	if !p.grouping {
		opts = append(opts, number.NoSeparator())
	}
	return opts
}

// parseNumberPattern splits a section into literal prefix, digit pattern,
// and literal suffix. Quoted text and backslash escapes are literals.
func parseNumberPattern(section string) numberPattern {
	var (
		p            numberPattern
		pre, suf     strings.Builder
		started      bool
		ended        bool
		afterPoint   bool
		pendingComma int
	)
	lit := func(s string) {
		if started {
			ended = true
			suf.WriteString(s)
		} else {
			pre.WriteString(s)
		}
	}

	rs := []rune(section)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case r == '\\' && i+1 < len(rs):
			i++
			lit(string(rs[i]))
		case r == '\'' || r == '"':
			j := i + 1
			for j < len(rs) && rs[j] != r {
				j++
			}
			lit(string(rs[i+1 : min(j, len(rs))]))
			i = j
		case !ended && (r == '0' || r == '#'):
			started = true
			p.digits = true
			if pendingComma > 0 {
				p.grouping = true
				pendingComma = 0
			}
			if afterPoint {
				p.maxFrac++
				if r == '0' {
					p.minFrac = p.maxFrac
				}
			} else if r == '0' {
				p.minInt++
			}
		case !ended && r == ',' && started && !afterPoint:
			pendingComma++
		case !ended && r == '.':
			started = true
			afterPoint = true
			p.scale += pendingComma
			pendingComma = 0
		case r == '%':
			p.percent = true
			lit("%")
		default:
			lit(string(r))
		}
	}
	p.scale += pendingComma
	p.prefix, p.suffix = pre.String(), suf.String()
	return p
}

// standardNumber expands N, F, P and G specifiers ("N2", "P0") into custom
// patterns.
func standardNumber(format string) (string, bool) {
	if len(format) == 0 || len(format) > 3 {
		return "", false
	}
	kind := unicode.ToUpper(rune(format[0]))
	prec := -1
	if len(format) > 1 {
		n, err := strconv.Atoi(format[1:])
		if err != nil || n < 0 {
			return "", false
		}
		prec = n
	}
	frac := func(def int) string {
		if prec < 0 {
			prec = def
		}
		if prec == 0 {
			return ""
		}
		return "." + strings.Repeat("0", prec)
	}
	switch kind {
	case 'N':
		return "#,0" + frac(2), true
	case 'F':
		return "0" + frac(2), true
	case 'P':
		return "#,0" + frac(2) + " %", true
	case 'G':
		if prec <= 0 {
			return "0.###############", true
		}
		return "0." + strings.Repeat("#", prec), true
	}
	return "", false
}

// splitSections splits a format string on unquoted semicolons.
// It always returns at least one section.
func splitSections(format string) []string {
	var (
		out   []string
		cur   strings.Builder
		quote rune
	)
	rs := []rune(format)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
			cur.WriteRune(r)
		case r == '\\' && i+1 < len(rs):
			cur.WriteRune(r)
			i++
			cur.WriteRune(rs[i])
		case r == '\'' || r == '"':
			quote = r
			cur.WriteRune(r)
		case r == ';':
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(out, cur.String())
}

func isZeroText(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) && r != '0' {
			return false
		}
	}
	return true
}
