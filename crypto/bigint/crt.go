// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package bigint

import (
	"math/big"

	"github.com/binance-chain/paillier-variants/common"
)

// CRT reconstructs the unique A with 0 <= A < prod(moduli) such that
// A = residues[i] (mod moduli[i]) for every i, via the Chinese Remainder
// Theorem. Requires pairwise-coprime moduli; used to lift the two
// per-prime DSA generators g1, g2 into a single generator g modulo n^2.
func CRT(moduli, residues []*big.Int) (*big.Int, error) {
	if len(moduli) != len(residues) {
		return nil, common.Wrapf(common.ErrAssertionFailure, "crt: %d moduli but %d residues", len(moduli), len(residues))
	}
	if len(moduli) == 0 {
		return nil, common.Wrap(common.ErrAssertionFailure, "crt: no moduli given")
	}

	prod := new(big.Int).Set(moduli[0])
	for _, m := range moduli[1:] {
		prod.Mul(prod, m)
	}

	result := new(big.Int)
	for i, m := range moduli {
		ni := new(big.Int).Div(prod, m)
		niInv, err := ModInverse(new(big.Int).Mod(ni, m), m)
		if err != nil {
			return nil, common.Wrapf(err, "crt: modulus %d not coprime with the others", i)
		}
		term := new(big.Int).Mul(residues[i], ni)
		term.Mul(term, niInv)
		result.Add(result, term)
	}
	result.Mod(result, prod)
	return result, nil
}
