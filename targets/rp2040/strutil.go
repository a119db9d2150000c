//go:build rp2040 || rp2350

package main

// itoa renders n in decimal without pulling fmt or strconv into the
// firmware image. The dashboard only ever prints small counters.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	var buf [12]byte
	pos := len(buf)

	u := uint(n)
	if n < 0 {
		u = uint(-n)
	}
	for u > 0 {
		pos--
		buf[pos] = byte('0' + u%10)
		u /= 10
	}
	if n < 0 {
		pos--
		buf[pos] = '-'
	}

	return string(buf[pos:])
}
