package core

// utoa converts an unsigned integer to a string without using fmt.
// Used by the firmware diagnostics, which avoid fmt and strconv.
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	var buf [10]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

// btoa renders a flag as 0/1
func btoa(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// FormatSnapshot renders a snapshot as a single console line
func FormatSnapshot(s Snapshot) string {
	return "cycle=" + utoa(s.Cycle) +
		" index=" + utoa(uint32(s.Index)) +
		" freeze=" + btoa(s.Freeze) +
		" short=" + btoa(s.ShortMode) +
		" tempo=" + utoa(uint32(s.Tempo))
}
