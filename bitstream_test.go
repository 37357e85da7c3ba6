package mp2

import "testing"

func TestBitstreamPeekConsume(t *testing.T) {
	// frame[2..] carries the payload; frame[0:2] are the sync bytes the
	// caller is expected to have already validated out of band.
	frame := []byte{0xff, 0xfd, 0b10110100, 0b01011010, 0b11110000, 0x00, 0x00}
	bs := newBitstream(frame)

	if got := bs.peek(4); got != 0b1011 {
		t.Fatalf("peek(4) = %04b, want 1011", got)
	}

	if got := bs.consume(4); got != 0b1011 {
		t.Fatalf("consume(4) = %04b, want 1011", got)
	}

	if got := bs.consume(4); got != 0b0100 {
		t.Fatalf("consume(4) = %04b, want 0100", got)
	}

	if got := bs.consume(8); got != 0b01011010 {
		t.Fatalf("consume(8) = %08b, want 01011010", got)
	}

	if got := bs.consume(8); got != 0b11110000 {
		t.Fatalf("consume(8) = %08b, want 11110000", got)
	}
}

func TestBitstreamRefillKeepsAtLeast16Bits(t *testing.T) {
	frame := make([]byte, 32)
	frame[2] = 0xff
	bs := newBitstream(frame)

	if bs.bitsInWindow < 16 {
		t.Fatalf("bitsInWindow = %d after construction, want >= 16", bs.bitsInWindow)
	}

	for i := 0; i < 20; i++ {
		bs.consume(1)
		if bs.bitsInWindow < 16 {
			t.Fatalf("bitsInWindow = %d after consume #%d, want >= 16", bs.bitsInWindow, i)
		}
	}
}

func TestBitstreamConsumeSixteenBits(t *testing.T) {
	frame := []byte{0xff, 0xfd, 0xab, 0xcd, 0x12, 0x34}
	bs := newBitstream(frame)

	if got := bs.consume(16); got != 0xabcd {
		t.Fatalf("consume(16) = %04x, want abcd", got)
	}
}
