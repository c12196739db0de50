package raz

import "math"

// FloatPrecision is the number of fractional digits written by FormatFloat.
const FloatPrecision = 4

// maxDigits is the width of the largest uint64 in base 10.
const maxDigits = 20

// ============================================================
// Encoding
// ============================================================

// FormatInt returns the base-10 text of n.
func FormatInt(n int64) *Str {
	return AppendInt(NewStr(), n)
}

// FormatUint returns the base-10 text of n.
func FormatUint(n uint64) *Str {
	return AppendUint(NewStr(), n)
}

// FormatFloat returns f as [-]<int>.<4 digits>, truncated.
func FormatFloat(f float64) *Str {
	return AppendFloat(NewStr(), f)
}

// AppendInt appends the base-10 text of n to dst and returns dst.
func AppendInt(dst *Str, n int64) *Str {
	var buf [maxDigits + 1]byte
	u := uint64(n)
	if n < 0 {
		u = -u
	}
	i := putDigits(buf[:], u)
	if n < 0 {
		buf[i] = '-'
		i++
	}
	reverse(buf[:i])
	dst.appendBytes(buf[:i])
	return dst
}

// AppendUint appends the base-10 text of n to dst and returns dst.
func AppendUint(dst *Str, n uint64) *Str {
	var buf [maxDigits]byte
	i := putDigits(buf[:], n)
	reverse(buf[:i])
	dst.appendBytes(buf[:i])
	return dst
}

// putDigits writes the digits of u least significant first.
func putDigits(buf []byte, u uint64) int {
	i := 0
	for {
		buf[i] = '0' + byte(u%10)
		i++
		u /= 10
		if u == 0 {
			return i
		}
	}
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// AppendFloat appends f to dst as [-]<int>.<4 digits> and returns dst.
//
// The integer part is f truncated toward zero. Each fractional digit is the
// integer part of the remainder times ten; the last digit is never rounded.
// NaN and the infinities are written as nan, inf and -inf.
func AppendFloat(dst *Str, f float64) *Str {
	switch {
	case math.IsNaN(f):
		dst.Append("nan")
		return dst
	case math.IsInf(f, 1):
		dst.Append("inf")
		return dst
	case math.IsInf(f, -1):
		dst.Append("-inf")
		return dst
	}

	if f < 0 {
		dst.PushBack('-')
		f = -f
	}
	ip := math.Trunc(f)
	if ip < math.MaxUint64 {
		AppendUint(dst, uint64(ip))
	} else {
		appendWideInt(dst, ip)
	}
	dst.PushBack('.')

	frac := f - ip
	for i := 0; i < FloatPrecision; i++ {
		frac *= 10
		d := int(frac)
		if d > 9 {
			d = 9
		}
		dst.PushBack('0' + byte(d))
		frac -= float64(d)
	}
	return dst
}

// appendWideInt writes integral values beyond the uint64 range digit by digit.
func appendWideInt(dst *Str, ip float64) {
	var buf []byte
	for ip >= 1 {
		buf = append(buf, '0'+byte(math.Mod(ip, 10)))
		ip = math.Trunc(ip / 10)
	}
	reverse(buf)
	dst.appendBytes(buf)
}

// ============================================================
// Decoding
// ============================================================

// ParseInt decodes s as a base-10 signed integer with an optional leading '-'.
func ParseInt(s *Str) (int64, error) {
	b := s.Bytes()
	neg := len(b) > 0 && b[0] == '-'
	start := 0
	if neg {
		start = 1
	}
	u, err := parseDigits("ParseInt", b, start)
	if err != nil {
		return 0, err
	}
	if neg {
		if u > 1<<63 {
			return 0, rangeError("ParseInt", b)
		}
		return -int64(u), nil
	}
	if u > math.MaxInt64 {
		return 0, rangeError("ParseInt", b)
	}
	return int64(u), nil
}

// ParseUint decodes s as a base-10 unsigned integer.
func ParseUint(s *Str) (uint64, error) {
	return parseDigits("ParseUint", s.Bytes(), 0)
}

// parseDigits accumulates b[start:] as value = value*10 + digit.
func parseDigits(fn string, b []byte, start int) (uint64, error) {
	if start >= len(b) {
		return 0, syntaxError(fn, b, len(b))
	}
	var v uint64
	for i := start; i < len(b); i++ {
		c := b[i]
		if !isDigit(c) {
			return 0, syntaxError(fn, b, i)
		}
		d := uint64(c - '0')
		if v > (math.MaxUint64-d)/10 {
			return 0, rangeError(fn, b)
		}
		v = v*10 + d
	}
	return v, nil
}

// ParseFloat decodes s as [-]<digits>[.<digits>]. At least one digit is
// required on either side of the point.
func ParseFloat(s *Str) (float64, error) {
	const fn = "ParseFloat"
	b := s.Bytes()
	i := 0
	neg := false
	if len(b) > 0 && b[0] == '-' {
		neg = true
		i = 1
	}

	digits := 0
	var v float64
	for ; i < len(b) && b[i] != '.'; i++ {
		if !isDigit(b[i]) {
			return 0, syntaxError(fn, b, i)
		}
		v = v*10 + float64(b[i]-'0')
		digits++
	}

	if i < len(b) && b[i] == '.' {
		i++
		frac := 0.0
		factor := 0.1
		for ; i < len(b); i++ {
			if !isDigit(b[i]) {
				return 0, syntaxError(fn, b, i)
			}
			frac += float64(b[i]-'0') * factor
			factor *= 0.1
			digits++
		}
		v += frac
	}

	if digits == 0 {
		return 0, syntaxError(fn, b, len(b))
	}
	if math.IsInf(v, 0) {
		return 0, rangeError(fn, b)
	}
	if neg {
		v = -v
	}
	return v, nil
}

// ParseBool decodes exactly "true" or "false".
func ParseBool(s *Str) (bool, error) {
	switch {
	case s.EqualString("true"):
		return true, nil
	case s.EqualString("false"):
		return false, nil
	}
	return false, syntaxError("ParseBool", s.Bytes(), -1)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func syntaxError(fn string, b []byte, offset int) *ParseError {
	return &ParseError{Func: fn, Input: string(b), Offset: offset, Err: ErrSyntax}
}

func rangeError(fn string, b []byte) *ParseError {
	return &ParseError{Func: fn, Input: string(b), Offset: -1, Err: ErrRange}
}
