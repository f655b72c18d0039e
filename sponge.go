package keccak

import "fmt"

// maxDigestBytes is the largest digest this package produces (SHA3-512 / 64 bytes).
const maxDigestBytes = 64

// maxRate is the largest sponge rate across the three supported capacities
// (SHA3-256's 136-byte rate), sized to back Context.pending without heap
// allocation.
const maxRate = 136

// Context is a streaming Keccak-f[1600] sponge. It absorbs input of any
// length via Update and produces a digest via Finalize. A Context is a
// single-writer resource: concurrent calls against the same Context are
// a data race. Distinct Contexts are fully independent.
//
// A Context occupies a fixed-size region and performs no heap allocation
// of its own; callers may stack-allocate one with NewSHA3_256 and friends.
//
// There is no Reset: once Finalize has been called, or to start a new
// hash, construct a new Context.
type Context struct {
	state         [200]byte
	pending       [maxRate]byte
	pendingLen    int
	totalConsumed uint64
	capacityBytes int
	mode          Mode
	finalized     bool
	digest        [maxDigestBytes]byte
	digestLen     int
}

func newContext(capacityBytes int, mode Mode) *Context {
	return &Context{capacityBytes: capacityBytes, mode: mode}
}

// NewSHA3_256 returns a fresh Context configured for SHA3-256 (rate 136,
// capacity 64 bytes), mode SHA3.
func NewSHA3_256() *Context { return newContext(64, ModeSHA3) }

// NewSHA3_384 returns a fresh Context configured for SHA3-384 (rate 104,
// capacity 96 bytes), mode SHA3.
func NewSHA3_384() *Context { return newContext(96, ModeSHA3) }

// NewSHA3_512 returns a fresh Context configured for SHA3-512 (rate 72,
// capacity 128 bytes), mode SHA3.
func NewSHA3_512() *Context { return newContext(128, ModeSHA3) }

// NewKeccak256 returns a fresh Context sized like SHA3-256 but configured
// for the original Keccak padding (domain byte 0x01), matching the
// widely-deployed Keccak-256 used outside the FIPS 202 standard.
func NewKeccak256() *Context { return newContext(64, ModeKeccak) }

// rate is the sponge rate in bytes for this Context's capacity.
func (c *Context) rate() int { return 200 - c.capacityBytes }

// digestBytes is the digest length in bytes this Context will produce;
// capacity = 2 * digest size, so digest bytes = capacityBytes / 2.
func (c *Context) digestBytes() int { return c.capacityBytes / 2 }

// SetMode assigns the domain-separation mode and returns the mode it
// replaces. Valid only on a fresh Context, before the first Update: once
// any byte has been absorbed, switching modes would silently produce a
// digest that matches neither SHA-3 nor Keccak of the same input, so
// this refuses with ErrOutOfOrder rather than permit it.
func (c *Context) SetMode(mode Mode) (Mode, error) {
	if c.finalized {
		return c.mode, fmt.Errorf("keccak: set mode after finalize: %w", ErrOutOfOrder)
	}
	if c.totalConsumed > 0 {
		return c.mode, fmt.Errorf("keccak: set mode after update: %w", ErrOutOfOrder)
	}
	previous := c.mode
	c.mode = mode
	return previous, nil
}

// Update absorbs len(p) bytes. It tolerates an empty p and any partition
// of a longer stream across multiple calls: the digest produced at
// Finalize depends only on the concatenation of all bytes absorbed, not
// on how they were grouped into calls.
func (c *Context) Update(p []byte) (int, error) {
	if c.finalized {
		return 0, fmt.Errorf("keccak: update after finalize: %w", ErrOutOfOrder)
	}

	total := len(p)
	rate := c.rate()
	for len(p) > 0 {
		space := rate - c.pendingLen
		take := space
		if take > len(p) {
			take = len(p)
		}
		copy(c.pending[c.pendingLen:], p[:take])
		c.pendingLen += take
		p = p[take:]

		if c.pendingLen == rate {
			absorb(&c.state, c.pending[:rate])
			permute(&c.state)
			c.pendingLen = 0
		} else if c.pendingLen > rate {
			panic("keccak: pending buffer exceeded rate")
		}
	}

	c.totalConsumed += uint64(total)
	return total, nil
}

// Write is an io.Writer-compatible alias for Update, so a Context can be
// the destination of io.Copy.
func (c *Context) Write(p []byte) (int, error) { return c.Update(p) }

// Finalize appends domain-separation and multi-rate padding to whatever
// remains unabsorbed, performs the final permutation, and returns the
// digest. The returned slice aliases the Context's internal buffer; its
// contents are only valid until the Context is reused or goes out of
// scope.
//
// Finalize is idempotent: a second call returns the same bytes without
// permuting again.
func (c *Context) Finalize() ([]byte, error) {
	if c.finalized {
		return c.digest[:c.digestLen], nil
	}

	rate := c.rate()
	if c.pendingLen >= rate {
		panic("keccak: pending buffer not less than rate at finalize")
	}

	absorb(&c.state, c.pending[:c.pendingLen])
	d := c.mode.dsByte()
	// Ordinary XOR handles the p == rate-1 coincidence (both writes land
	// on the same byte) without a branch: the combined value ends up
	// being d ^ 0x80.
	c.state[c.pendingLen] ^= d
	c.state[rate-1] ^= 0x80
	permute(&c.state)

	c.digestLen = c.digestBytes()
	copy(c.digest[:c.digestLen], c.state[:c.digestLen])
	c.pendingLen = 0
	c.finalized = true
	return c.digest[:c.digestLen], nil
}
