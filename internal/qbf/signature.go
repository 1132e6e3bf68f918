package qbf

// Sig is a 64-bit Bloom-style fingerprint, either of one clause's literal set
// or of the OR of every clause a variable currently occurs in. A signature
// mismatch is a definitive "cannot subsume/resolve"; a match only licenses an
// expensive exact check (spec.md §4.3).
type Sig uint64

// litSigBit returns the single fingerprint bit contributed by literal l. The
// hash mixes the literal's bit pattern (Fibonacci hashing) so that the
// positive and negative occurrences of the same variable land on different
// bits more often than not, matching bloqqer.c's intent of hashing on the
// signed literal rather than just its variable.
func litSigBit(l Literal) Sig {
	h := uint64(l) * 0x9E3779B97F4A7C15
	return Sig(1) << (h & 63)
}

// clauseSig computes the signature of a literal slice from scratch. Used at
// clause creation, after strengthening, and for forward-subsumption probes.
func clauseSig(lits []Literal) Sig {
	var sig Sig
	for _, l := range lits {
		sig |= litSigBit(l)
	}
	return sig
}

// sig1 reports whether the stored clause (with signature storedSig) can be
// ruled out from subsuming a buffer with signature bufSig: if storedSig has
// any bit not present in bufSig, the stored clause contains a literal the
// buffer cannot have, so it cannot subsume it.
func sig1Blocks(storedSig, bufSig Sig) bool {
	return storedSig&^bufSig != 0
}

// sig2Hit is the cheap "some stored clause might subsume the buffer"
// pre-filter: the OR of every stored signature touching the buffer's
// literals, intersected with the buffer's own signature.
func sig2Hit(aggregateSig, bufSig Sig) bool {
	return aggregateSig&bufSig != 0
}
