package raz

// Hash returns the djb2 hash of s: h = h*33 + c, starting from 5381.
func Hash(s string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(s); i++ {
		h = (h << 5) + h + uint32(s[i])
	}
	return h
}

// HashStr is Hash over the logical bytes of s.
func HashStr(s *Str) uint32 {
	h := uint32(5381)
	for _, c := range s.Bytes() {
		h = (h << 5) + h + uint32(c)
	}
	return h
}
