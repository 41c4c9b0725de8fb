package conv

// Itoa writes base-10 representation of n into buf and returns the used slice.
// buf should be length >= 20 for int64. No allocations; no fmt/strconv dependency.
func Itoa(buf []byte, n int64) []byte {
	if n >= 0 {
		return Utoa(buf, uint64(n))
	}
	if len(buf) < 2 {
		return buf[:0]
	}
	d := Utoa(buf[1:], uint64(-n))
	i := len(buf) - len(d) - 1
	buf[i] = '-'
	return buf[i:]
}

// Label writes a pin label such as "D22" or "A0".
func Label(buf []byte, prefix byte, n uint8) []byte {
	d := Utoa(buf, uint64(n))
	if len(d) == len(buf) {
		return d
	}
	i := len(buf) - len(d) - 1
	buf[i] = prefix
	return buf[i:]
}
