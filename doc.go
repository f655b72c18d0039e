// Package keccak implements the FIPS 202 SHA3-256/384/512 hash functions
// and the original (pre-standardization) Keccak padding variant, built on
// a from-scratch Keccak-f[1600] permutation.
//
// A Context absorbs input of any length via Update and produces a digest
// via Finalize:
//
//	c := keccak.NewSHA3_256()
//	c.Update([]byte("abc"))
//	digest, _ := c.Finalize()
//
// HashBuffer provides the same thing as a single call for callers that
// already have the whole input in memory.
//
// Only SHA3-256, SHA3-384, SHA3-512 and their Keccak counterparts are
// supported. SHAKE and tree hashing are out of scope.
package keccak
