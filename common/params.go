// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

// Configuration surface for the Paillier variant comparison. These mirror the
// research code's module-level constants. The cipher engine takes the table
// base from the keypair's own tables and the Tr combination count from
// Keypair.NoGnr; it reads NoGnr here only for a keypair that carries no count
// of its own (as after Load, which does not persist it).
const (
	// DefaultKeysize is the default bit length of the public modulus n.
	DefaultKeysize = 2048

	// Power (B) is the per-dimension size of the precomputed message table Tm,
	// and bounds message width to 2*log2(Power) bits for Tm-bearing variants.
	Power = 1 << 16

	// NoGnr (k) is the number of randomizer-table entries combined per
	// encryption in Tr-bearing variants.
	NoGnr = 8
)

// TableBitWidth returns 2*log2(power), the maximum plaintext bit length a
// Tm-bearing variant built with the given table base can encrypt.
func TableBitWidth(power int) int {
	bits := 0
	for v := power; v > 1; v >>= 1 {
		bits++
	}
	return 2 * bits
}
