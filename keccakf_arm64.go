//go:build arm64 && !purego

package keccak

// permute runs Keccak-f[1600] on arm64.
//
// github.com/Giulio2002/faster_keccak dispatches Apple Silicon (which
// always carries the Armv8.2-A SHA3 extensions: VEOR3, VRAX1, VXAR,
// VBCAX) to a NEON assembly permutation and falls back to pure Go
// elsewhere. That assembly was not available to this port, so every
// arm64 target uses the portable Go permutation; see DESIGN.md.
func permute(a *[200]byte) {
	permuteGeneric(a)
}
