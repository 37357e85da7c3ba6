package mp2

// bitstream is a byte cursor plus a 24-bit MSB-aligned window. It supports
// peek/consume of 1..16 bits at a time and is the only way frame fields are
// read. It does not itself detect end of stream: callers must bound their
// reads against a validated frame size, since driving it past the end of
// frame just reads whatever bytes follow in the caller's buffer.
type bitstream struct {
	window       uint32
	bitsInWindow uint32
	data         []byte
	pos          int
}

// newBitstream starts reading frame right after the two sync bytes, which
// the caller has already consumed out of band while validating the header.
func newBitstream(frame []byte) *bitstream {
	bs := &bitstream{
		window:       uint32(frame[2]) << 16,
		bitsInWindow: 8,
		data:         frame,
		pos:          3,
	}
	bs.refill()
	return bs
}

// refill tops the window back up to at least 16 valid bits.
func (bs *bitstream) refill() {
	for bs.bitsInWindow < 16 {
		bs.window |= uint32(bs.data[bs.pos]) << (16 - bs.bitsInWindow)
		bs.pos++
		bs.bitsInWindow += 8
	}
}

// peek returns the top n bits of the window without consuming them.
// Precondition: 1 <= n <= bitsInWindow.
func (bs *bitstream) peek(n uint32) uint32 {
	return bs.window >> (24 - n)
}

// consume returns peek(n), then shifts the window left by n bits and
// refills it.
func (bs *bitstream) consume(n uint32) uint32 {
	v := bs.peek(n)
	bs.window = (bs.window << n) & 0xffffff
	bs.bitsInWindow -= n
	bs.refill()
	return v
}
