package keccak

import "fmt"

// HashBuffer runs Init+SetMode+Update+Finalize in one call for a
// caller-supplied input, writing the digest into output and returning
// the number of digest bytes written.
//
// bitSize must be one of the canonical digest sizes {256, 384, 512}.
// This is the same value the original C fuzz harness produces via
// bitSize = n<<1 for n in {128, 192, 256} before calling sha3_HashBuffer;
// HashBuffer itself sees only the already-doubled canonical value.
//
// output must have capacity for at least bitSize/8 bytes, or
// ErrInvalidArgument is returned.
func HashBuffer(bitSize int, mode Mode, input []byte, output []byte) (int, error) {
	capacityBytes, ok := capacityForBitSize(bitSize)
	if !ok {
		return 0, fmt.Errorf("keccak: unsupported digest size %d: %w", bitSize, ErrInvalidArgument)
	}

	digestBytes := capacityBytes / 2
	if len(output) < digestBytes {
		return 0, fmt.Errorf("keccak: output buffer too small for %d-bit digest: %w", digestBytes*8, ErrInvalidArgument)
	}

	c := newContext(capacityBytes, mode)
	if _, err := c.Update(input); err != nil {
		return 0, err
	}
	digest, err := c.Finalize()
	if err != nil {
		return 0, err
	}

	n := copy(output, digest)
	*c = Context{}
	return n, nil
}

// capacityForBitSize maps a canonical or doubled digest-bit-size to the
// capacity, in bytes, it corresponds to.
func capacityForBitSize(bitSize int) (capacityBytes int, ok bool) {
	switch bitSize {
	case 256:
		return 64, true
	case 384:
		return 96, true
	case 512:
		return 128, true
	default:
		return 0, false
	}
}
