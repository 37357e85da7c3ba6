package mp2

// mode is the MPEG-1 Audio channel mode (header bits, §3).
type mode uint8

const (
	modeStereo mode = iota
	modeJointStereo
	modeDualChannel
	modeMono
)

// Stream is a decoder bound to a Context. It owns the polyphase history V,
// the ring offset Voffs, and the scratch buffer U (§3). A Stream must not
// be driven by two goroutines at once, but any number of Streams may share
// one Context concurrently.
type Stream struct {
	ctx   *Context
	v     [2][1024]int32
	voffs int32
	u     [512]int32
}

// NewStream creates a Stream bound to ctx. ctx may be shared by any number
// of streams.
func NewStream(ctx *Context) *Stream {
	return &Stream{ctx: ctx}
}

// GetSampleRate is a cheap header-only probe that reads just the first
// three bytes of frame to recover the sampling rate, without touching
// stream state. It accepts the same header shape DecodeFrame does
// ((frame[1]&0xFE)==0xFC) rather than the stricter "no CRC" form, so a
// frame DecodeFrame accepts is always one GetSampleRate accepts too.
func (s *Stream) GetSampleRate(frame []byte) (int32, error) {
	if len(frame) < 3 || frame[0] != 0xff || (frame[1]&0xfe) != 0xfc {
		return 0, ErrSync
	}

	bitRateIndex := frame[2] >> 4
	if bitRateIndex == 0 || bitRateIndex == 15 {
		return 0, ErrInvalidBitRate
	}

	samplingFrequency := (frame[2] >> 2) & 3
	if samplingFrequency == 3 {
		return 0, ErrInvalidSampleRate
	}

	return sampleRates[samplingFrequency], nil
}

// DecodeFrame parses and decodes one MP2 frame from frame, writing exactly
// 2304 int16 PCM samples (1152 interleaved stereo frames) to the start of
// pcmOut, and returns the size in bytes of the frame that was consumed so
// the caller can advance its input cursor.
func (s *Stream) DecodeFrame(frame []byte, pcmOut []int16) (uint32, error) {
	if len(frame) < 4 || frame[0] != 0xff || (frame[1]&0xfe) != 0xfc {
		return 0, ErrSync
	}

	bs := newBitstream(frame)

	bitRateIndexMinus1 := int32(bs.consume(4)) - 1
	if bitRateIndexMinus1 < 0 || bitRateIndexMinus1 > 13 {
		return 0, ErrInvalidBitRate
	}

	samplingFrequency := int32(bs.consume(2))
	if samplingFrequency == 3 {
		return 0, ErrInvalidSampleRate
	}

	paddingBit := int32(bs.consume(1))
	bs.consume(1) // private_bit, discarded
	m := mode(bs.consume(2))

	var bound int32
	numChannels := 2
	switch m {
	case modeJointStereo:
		bound = (int32(bs.consume(2)) + 1) << 2
	case modeMono:
		bs.consume(2)
		bound = 0
		numChannels = 1
	default: // Stereo, DualChannel
		bs.consume(2)
		bound = 32
	}

	bs.consume(4) // copyright, original, emphasis
	if frame[1]&1 == 0 {
		bs.consume(16) // CRC, unverified
	}

	frameSize := uint32(144000*bitRates[bitRateIndexMinus1]/sampleRates[samplingFrequency]) + uint32(paddingBit)
	if len(pcmOut) < int(frameSize) {
		return 0, ErrBufferTooSmall
	}

	tableRow := 1
	if m == modeMono {
		tableRow = 0
	}
	t := int32(quantLutStep1[tableRow][bitRateIndexMinus1])
	t = int32(quantLutStep2[t][samplingFrequency])
	sblimit := t & 63
	tableIdx := int(t >> 6)
	if bound > sblimit {
		bound = sblimit
	}

	var allocation [2][32]*quantizerSpec
	for sb := int32(0); sb < bound; sb++ {
		allocation[0][sb] = s.readAllocation(bs, int(sb), tableIdx)
		allocation[1][sb] = s.readAllocation(bs, int(sb), tableIdx)
	}
	for sb := bound; sb < sblimit; sb++ {
		a := s.readAllocation(bs, int(sb), tableIdx)
		allocation[0][sb] = a
		allocation[1][sb] = a
	}

	var scfsi [2][32]int32
	for sb := int32(0); sb < sblimit; sb++ {
		for ch := 0; ch < numChannels; ch++ {
			if allocation[ch][sb] != nil {
				scfsi[ch][sb] = int32(bs.consume(2))
			}
		}
		if m == modeMono {
			scfsi[1][sb] = scfsi[0][sb]
		}
	}

	var scaleFactor [2][32][3]int32
	for sb := int32(0); sb < sblimit; sb++ {
		for ch := 0; ch < numChannels; ch++ {
			if allocation[ch][sb] == nil {
				continue
			}
			switch scfsi[ch][sb] {
			case 0:
				scaleFactor[ch][sb][0] = int32(bs.consume(6))
				scaleFactor[ch][sb][1] = int32(bs.consume(6))
				scaleFactor[ch][sb][2] = int32(bs.consume(6))
			case 1:
				a := int32(bs.consume(6))
				scaleFactor[ch][sb][0] = a
				scaleFactor[ch][sb][1] = a
				scaleFactor[ch][sb][2] = int32(bs.consume(6))
			case 2:
				a := int32(bs.consume(6))
				scaleFactor[ch][sb][0] = a
				scaleFactor[ch][sb][1] = a
				scaleFactor[ch][sb][2] = a
			case 3:
				scaleFactor[ch][sb][0] = int32(bs.consume(6))
				a := int32(bs.consume(6))
				scaleFactor[ch][sb][1] = a
				scaleFactor[ch][sb][2] = a
			}
		}
		if m == modeMono {
			scaleFactor[1][sb] = scaleFactor[0][sb]
		}
	}

	var sample [2][32][3]int32
	outPos := 0
	for part := 0; part < 3; part++ {
		for granule := 0; granule < 4; granule++ {
			for sb := int32(0); sb < bound; sb++ {
				s.readSamples(bs, allocation[0][sb], scaleFactor[0][sb][part], &sample[0][sb])
				s.readSamples(bs, allocation[1][sb], scaleFactor[1][sb][part], &sample[1][sb])
			}
			for sb := bound; sb < sblimit; sb++ {
				s.readSamples(bs, allocation[0][sb], scaleFactor[0][sb][part], &sample[0][sb])
				sample[1][sb] = sample[0][sb]
			}
			for sb := sblimit; sb < 32; sb++ {
				sample[0][sb] = [3]int32{}
				sample[1][sb] = [3]int32{}
			}

			for idx := 0; idx < 3; idx++ {
				s.voffs = (s.voffs - 64) & 1023

				for ch := 0; ch < 2; ch++ {
					for i := 0; i < 64; i++ {
						var sum int32
						for j := 0; j < 32; j++ {
							sum += s.ctx.n[i][j] * sample[ch][j][idx]
						}
						s.v[ch][s.voffs+int32(i)] = (sum + 8192) >> 14
					}

					for i := 0; i < 8; i++ {
						for j := 0; j < 32; j++ {
							s.u[(i<<6)+j] = s.v[ch][(s.voffs+int32(i<<7)+int32(j))&1023]
							s.u[(i<<6)+j+32] = s.v[ch][(s.voffs+int32(i<<7)+int32(j)+96)&1023]
						}
					}

					for i := 0; i < 512; i++ {
						s.u[i] = (s.u[i]*synthesisWindow[i] + 32) >> 6
					}

					for j := 0; j < 32; j++ {
						var sum int32
						for i := 0; i < 16; i++ {
							sum -= s.u[(i<<5)+j]
						}
						sum = (sum + 8) >> 4
						if sum < -32768 {
							sum = -32768
						}
						if sum > 32767 {
							sum = 32767
						}
						pcmOut[outPos+((idx<<6)|(j<<1)|ch)] = int16(sum)
					}
				}
			}

			outPos += 192
		}
	}

	return frameSize, nil
}

// readAllocation reads the per-subband bit-allocation field (§4.2) and
// resolves it to a quantizer spec, or nil if no bits were allocated.
func (s *Stream) readAllocation(bs *bitstream, sb, tableIdx int) *quantizerSpec {
	step3 := quantLutStep3[tableIdx][sb]
	nbal := uint32(step3) >> 4
	row := step3 & 15

	bits := bs.consume(nbal)
	q := quantLutStep4[row][bits]
	if q == 0 {
		return nil
	}
	return &quantizerTable[q-1]
}

// readSamples reads and dequantizes the three consecutive samples of one
// granule for a single subband (§4.2's read_samples contract); the caller
// picks the scale factor for the current part.
func (s *Stream) readSamples(bs *bitstream, alloc *quantizerSpec, scaleFactorIndex int32, sample *[3]int32) {
	if alloc == nil {
		sample[0], sample[1], sample[2] = 0, 0, 0
		return
	}

	scf := scaleFactorValue[scaleFactorIndex]
	nlevels := int32(alloc.nlevels)

	if alloc.grouping != 0 {
		v := int32(bs.consume(uint32(alloc.cwBits)))
		sample[0] = v % nlevels
		v /= nlevels
		sample[1] = v % nlevels
		sample[2] = v / nlevels
	} else {
		sample[0] = int32(bs.consume(uint32(alloc.cwBits)))
		sample[1] = int32(bs.consume(uint32(alloc.cwBits)))
		sample[2] = int32(bs.consume(uint32(alloc.cwBits)))
	}

	adj := ((nlevels + 1) >> 1) - 1
	smul := int32(alloc.smul)
	sdiv := int32(alloc.sdiv)
	for i := 0; i < 3; i++ {
		val := adj - sample[i]
		val = val*smul + val/sdiv
		sample[i] = (val*(scf>>12) + ((val*(scf&0xfff) + 2048) >> 12)) >> 12
	}
}
