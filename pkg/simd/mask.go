package simd

// Mask4 holds one boolean per lane of a 4-wide packet
type Mask4 [4]bool

// Mask8 holds one boolean per lane of an 8-wide packet
type Mask8 [8]bool

// Any reports whether at least one lane is set
func (m Mask4) Any() bool {
	return m[0] || m[1] || m[2] || m[3]
}

// All reports whether every lane is set
func (m Mask4) All() bool {
	return m[0] && m[1] && m[2] && m[3]
}

// Count returns the number of set lanes
func (m Mask4) Count() int {
	n := 0
	for _, b := range m {
		if b {
			n++
		}
	}
	return n
}

// Any reports whether at least one lane is set
func (m Mask8) Any() bool {
	for _, b := range m {
		if b {
			return true
		}
	}
	return false
}

// All reports whether every lane is set
func (m Mask8) All() bool {
	for _, b := range m {
		if !b {
			return false
		}
	}
	return true
}

// Count returns the number of set lanes
func (m Mask8) Count() int {
	n := 0
	for _, b := range m {
		if b {
			n++
		}
	}
	return n
}
