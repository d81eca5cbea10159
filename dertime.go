package chainwalk

// Time is a comparable instant, expressed as seconds since the Unix
// epoch. It is totally ordered via Go's built-in int64 comparisons.
type Time int64

// Before reports whether t is strictly earlier than u.
func (t Time) Before(u Time) bool { return t < u }

// TimeFromUnix converts a Unix timestamp (as produced by time.Time.Unix)
// into a Time.
func TimeFromUnix(seconds int64) Time { return Time(seconds) }

var daysBeforeMonth = [...]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year, month int) int {
	switch month {
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// daysSinceEpoch computes the number of days between the Unix epoch
// (1970-01-01) and the given Gregorian calendar date, which must already
// be known to be in-range (1 <= month <= 12, 1 <= day <= daysInMonth).
func daysSinceEpoch(year, month, day int) int64 {
	days := int64(0)
	if year >= 1970 {
		for y := 1970; y < year; y++ {
			days += 365
			if isLeapYear(y) {
				days++
			}
		}
	} else {
		for y := year; y < 1970; y++ {
			days -= 365
			if isLeapYear(y) {
				days--
			}
		}
	}
	days += int64(daysBeforeMonth[month-1])
	if month > 2 && isLeapYear(year) {
		days++
	}
	days += int64(day - 1)
	return days
}

func readDigit(r *Reader) (int, error) {
	b, ok := r.readByte()
	if !ok {
		return 0, BadDERTime
	}
	if b < '0' || b > '9' {
		return 0, BadDERTime
	}
	return int(b - '0'), nil
}

func readTwoDigits(r *Reader, min, max int) (int, error) {
	hi, err := readDigit(r)
	if err != nil {
		return 0, err
	}
	lo, err := readDigit(r)
	if err != nil {
		return 0, err
	}
	value := hi*10 + lo
	if value < min || value > max {
		return 0, BadDERTime
	}
	return value, nil
}

// TimeChoice decodes a DER UTCTime or GeneralizedTime value, whichever tag
// is next on the cursor, into a Time. UTCTime two-digit years follow the
// RFC 5280 window: 50-99 maps to 19YY, 00-49 maps to 20YY. Only a
// trailing 'Z' (Zulu) time zone designator is accepted; fractional
// seconds and any other offset form are rejected.
func TimeChoice(r *Reader) (Time, error) {
	isUTCTime := r.Peek(TagUTCTime)
	tag := TagGeneralizedTime
	if isUTCTime {
		tag = TagUTCTime
	}

	return Nested(r, tag, func(value *Reader) (Time, error) {
		var year int
		if isUTCTime {
			yy, err := readTwoDigits(value, 0, 99)
			if err != nil {
				return 0, err
			}
			if yy >= 50 {
				year = 1900 + yy
			} else {
				year = 2000 + yy
			}
		} else {
			hi, err := readTwoDigits(value, 0, 99)
			if err != nil {
				return 0, err
			}
			lo, err := readTwoDigits(value, 0, 99)
			if err != nil {
				return 0, err
			}
			year = hi*100 + lo
		}

		month, err := readTwoDigits(value, 1, 12)
		if err != nil {
			return 0, err
		}
		day, err := readTwoDigits(value, 1, daysInMonth(year, month))
		if err != nil {
			return 0, err
		}
		hours, err := readTwoDigits(value, 0, 23)
		if err != nil {
			return 0, err
		}
		minutes, err := readTwoDigits(value, 0, 59)
		if err != nil {
			return 0, err
		}
		seconds, err := readTwoDigits(value, 0, 59)
		if err != nil {
			return 0, err
		}

		zone, ok := value.readByte()
		if !ok {
			return 0, BadDERTime
		}
		if zone != 'Z' {
			return 0, BadDERTime
		}

		totalSeconds := daysSinceEpoch(year, month, day)*86400 +
			int64(hours)*3600 + int64(minutes)*60 + int64(seconds)
		return Time(totalSeconds), nil
	})
}
