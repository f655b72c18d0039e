package keccak

import "encoding/binary"

// rc holds the 24 round constants for iota, canonical FIPS 202 values.
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotc holds the rotation distance applied by rho at each step of the
// combined rho+pi cyclic walk, starting from lane (1,0).
var rotc = [24]uint{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// piln holds the destination lane index pi relocates each source lane to,
// in the same walk order as rotc.
var piln = [24]uint{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

func rotl64(x uint64, n uint) uint64 {
	return (x << n) | (x >> (64 - n))
}

// permuteGeneric runs the 24 rounds of Keccak-f[1600] over the 200-byte
// state, in place. Pure function: no globals are mutated, no allocation,
// no failure mode.
func permuteGeneric(a *[200]byte) {
	var s [25]uint64
	for i := range s {
		s[i] = binary.LittleEndian.Uint64(a[i*8:])
	}

	var bc [5]uint64
	for round := 0; round < 24; round++ {
		// theta
		for i := 0; i < 5; i++ {
			bc[i] = s[i] ^ s[i+5] ^ s[i+10] ^ s[i+15] ^ s[i+20]
		}
		for i := 0; i < 5; i++ {
			d := bc[(i+4)%5] ^ rotl64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				s[j+i] ^= d
			}
		}

		// rho and pi, folded into one 24-step cyclic walk
		t := s[1]
		for i := 0; i < 24; i++ {
			j := piln[i]
			bc[0] = s[j]
			s[j] = rotl64(t, rotc[i])
			t = bc[0]
		}

		// chi, row-local scratch so updates within a row don't see each other
		for j := 0; j < 25; j += 5 {
			for i := 0; i < 5; i++ {
				bc[i] = s[j+i]
			}
			for i := 0; i < 5; i++ {
				s[j+i] ^= (^bc[(i+1)%5]) & bc[(i+2)%5]
			}
		}

		// iota
		s[0] ^= rc[round]
	}

	for i := range s {
		binary.LittleEndian.PutUint64(a[i*8:], s[i])
	}
}
