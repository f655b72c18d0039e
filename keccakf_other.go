//go:build (!amd64 && !arm64) || purego

package keccak

// permute runs Keccak-f[1600] using the portable Go implementation, for
// any target without a dedicated build tag above, or when built with
// the purego tag.
func permute(a *[200]byte) {
	permuteGeneric(a)
}
