//go:build amd64 && !purego

package keccak

// permute runs Keccak-f[1600] on amd64.
//
// github.com/Giulio2002/faster_keccak backs this build tag with an
// unrolled, complementing-lanes assembly permutation lifted from Go's
// stdlib crypto/internal/fips140/sha3. That assembly was not available
// to this port, so this build keeps the per-arch file split but falls
// back to the portable Go permutation; see DESIGN.md.
func permute(a *[200]byte) {
	permuteGeneric(a)
}
