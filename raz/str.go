package raz

const strMinCap = 16

// Str is a growable byte buffer that owns its storage.
//
// The backing array always holds a 0 byte at index Len(), so CStr hands out
// the logical bytes plus terminator without copying. The invariant
// Len() < Cap() holds after every operation. The zero value is an empty
// Str whose storage is allocated on first use.
type Str struct {
	data []byte // len(data) is the allocated capacity
	n    int
}

// NewStr returns an empty Str with the default capacity.
func NewStr() *Str {
	return &Str{data: make([]byte, strMinCap)}
}

// StrFrom returns a Str holding a copy of s.
func StrFrom(s string) *Str {
	data := make([]byte, strCapFor(len(s)))
	copy(data, s)
	return &Str{data: data, n: len(s)}
}

// StrFromBytes returns a Str holding a copy of b.
func StrFromBytes(b []byte) *Str {
	data := make([]byte, strCapFor(len(b)))
	copy(data, b)
	return &Str{data: data, n: len(b)}
}

func strCapFor(n int) int {
	if n+1 < strMinCap {
		return strMinCap
	}
	return n + 1
}

// Len returns the logical length, terminator excluded.
func (s *Str) Len() int { return s.n }

// Cap returns the allocated capacity, terminator slot included.
func (s *Str) Cap() int { return len(s.data) }

// Empty reports whether the logical length is zero.
func (s *Str) Empty() bool { return s.n == 0 }

// reserve makes room for k more bytes plus the terminator. A zero Str
// gets strMinCap bytes on first use.
func (s *Str) reserve(k int) {
	required := s.n + k + 1
	if required <= len(s.data) {
		return
	}
	newCap := len(s.data) * 2
	if newCap < strMinCap {
		newCap = strMinCap
	}
	if newCap < required {
		newCap = required
	}
	data := make([]byte, newCap)
	copy(data, s.data[:s.n])
	s.data = data
}

// PushBack appends a single byte.
func (s *Str) PushBack(c byte) {
	s.reserve(1)
	s.data[s.n] = c
	s.n++
	s.data[s.n] = 0
}

// Append appends the bytes of lit.
func (s *Str) Append(lit string) {
	s.reserve(len(lit))
	s.n += copy(s.data[s.n:], lit)
	s.data[s.n] = 0
}

// AppendStr appends the logical bytes of o. o may be s itself.
func (s *Str) AppendStr(o *Str) {
	s.appendBytes(o.Bytes())
}

func (s *Str) appendBytes(p []byte) {
	// p may alias s.data; reserve keeps the old array alive until the copy.
	s.reserve(len(p))
	s.n += copy(s.data[s.n:], p)
	s.data[s.n] = 0
}

// Write appends p. It never fails.
func (s *Str) Write(p []byte) (int, error) {
	s.appendBytes(p)
	return len(p), nil
}

// WriteString appends lit. It never fails.
func (s *Str) WriteString(lit string) (int, error) {
	s.Append(lit)
	return len(lit), nil
}

// WriteByte appends c. It never fails.
func (s *Str) WriteByte(c byte) error {
	s.PushBack(c)
	return nil
}

// At returns the byte at index i. It panics with an *IndexError when i is
// outside [0, Len()).
func (s *Str) At(i int) byte {
	if err := checkIndex(i, s.n); err != nil {
		panic(err)
	}
	return s.data[i]
}

// Get returns the byte at index i, or an *IndexError.
func (s *Str) Get(i int) (byte, error) {
	if err := checkIndex(i, s.n); err != nil {
		return 0, err
	}
	return s.data[i], nil
}

// Set overwrites the byte at index i. It panics like At.
func (s *Str) Set(i int, c byte) {
	if err := checkIndex(i, s.n); err != nil {
		panic(err)
	}
	s.data[i] = c
}

// Bytes returns the logical bytes. The slice aliases the storage and is
// invalidated by the next growing append.
func (s *Str) Bytes() []byte {
	return s.data[:s.n:s.n]
}

// CStr returns the logical bytes followed by the terminating 0 byte.
func (s *Str) CStr() []byte {
	s.reserve(0)
	return s.data[: s.n+1 : s.n+1]
}

// String returns a copy of the logical bytes as a string.
func (s *Str) String() string {
	return string(s.data[:s.n])
}

// Equal reports whether s and o hold the same bytes.
func (s *Str) Equal(o *Str) bool {
	return s.EqualString(string(o.Bytes()))
}

// EqualString reports whether s holds exactly the bytes of lit.
func (s *Str) EqualString(lit string) bool {
	if s.n != len(lit) {
		return false
	}
	for i := 0; i < s.n; i++ {
		if s.data[i] != lit[i] {
			return false
		}
	}
	return true
}

// Compare returns the difference of the first mismatching bytes of s and o,
// the terminator taking part: negative when s sorts first, 0 when equal.
func (s *Str) Compare(o *Str) int {
	return compareBytes(s.Bytes(), string(o.Bytes()))
}

// CompareString is Compare against a literal.
func (s *Str) CompareString(lit string) int {
	return compareBytes(s.Bytes(), lit)
}

func compareBytes(a []byte, b string) int {
	i := 0
	for i < len(a) && i < len(b) {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
		i++
	}
	switch {
	case i < len(a):
		return int(a[i])
	case i < len(b):
		return -int(b[i])
	default:
		return 0
	}
}

// HasPrefix reports whether s begins with prefix.
func (s *Str) HasPrefix(prefix string) bool {
	if len(prefix) > s.n {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if s.data[i] != prefix[i] {
			return false
		}
	}
	return true
}

// HasSuffix reports whether s ends with suffix.
func (s *Str) HasSuffix(suffix string) bool {
	if len(suffix) > s.n {
		return false
	}
	off := s.n - len(suffix)
	for i := 0; i < len(suffix); i++ {
		if s.data[off+i] != suffix[i] {
			return false
		}
	}
	return true
}

// Substr returns a new Str with up to count bytes starting at start. An
// absent count means "to the end"; a count past the end is clamped. A start
// at or beyond Len() yields an empty Str. A negative start panics.
func (s *Str) Substr(start int, count Optional[int]) *Str {
	if start < 0 {
		panic(&IndexError{Index: start, Len: s.n})
	}
	if start >= s.n {
		return NewStr()
	}
	remaining := s.n - start
	c := count.ValueOr(remaining)
	if c > remaining {
		c = remaining
	}
	if c < 0 {
		c = 0
	}
	return StrFromBytes(s.data[start : start+c])
}

// Clear resets the length to zero and keeps the storage.
func (s *Str) Clear() {
	s.n = 0
	s.reserve(0)
	s.data[0] = 0
}

// Clone returns a deep copy with the same capacity.
func (s *Str) Clone() *Str {
	data := make([]byte, len(s.data))
	copy(data, s.data)
	return &Str{data: data, n: s.n}
}

// Assign replaces the contents of s with a deep copy of o.
func (s *Str) Assign(o *Str) {
	if s == o {
		return
	}
	data := make([]byte, len(o.data))
	copy(data, o.data)
	s.data = data
	s.n = o.n
}
