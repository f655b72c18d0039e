package keccak

import "encoding/binary"

// absorb XORs data into the beginning of state, 8 bytes at a time via
// explicit little-endian decode/encode.
//
// github.com/Giulio2002/faster_keccak did this with an unsafe pointer
// cast to [25]uint64 and a native-endianness XOR, which is only correct
// on little-endian hosts: a native uint64 read/write round-trips the
// bytes in host order, not LE order, so the same trick silently
// produces wrong digests on a big-endian target. Decoding through
// binary.LittleEndian keeps the byte layout explicit regardless of host
// endianness.
func absorb(state *[200]byte, data []byte) {
	n := len(data) &^ 7
	for i := 0; i < n; i += 8 {
		v := binary.LittleEndian.Uint64(data[i:])
		cur := binary.LittleEndian.Uint64(state[i:])
		binary.LittleEndian.PutUint64(state[i:], cur^v)
	}
	for i := n; i < len(data); i++ {
		state[i] ^= data[i]
	}
}
