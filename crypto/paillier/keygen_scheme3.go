// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package paillier

import (
	"math/big"

	"github.com/binance-chain/paillier-variants/common"
	"github.com/binance-chain/paillier-variants/crypto/bigint"
)

// generateDSA is the DSA-parameter keypair strategy (spec §4.2) shared by
// Scheme3 and all three precompute variants: two independent DSA parameter
// triples, CRT-lifted into a single generator of order alpha*n modulo n^2.
func generateDSA(nLength int) (*PublicKey, *PrivateKey, error) {
	halfBits := nLength / 2

	p1, q1, g1 := bigint.DSAParams(halfBits)
	if !bigint.SubgroupLiftHolds(p1, q1, g1) {
		return nil, nil, common.Wrap(common.ErrAssertionFailure, "dsa: subgroup lift failed for (p1, q1, g1)")
	}
	p2, q2, g2 := bigint.DSAParams(halfBits)
	if !bigint.SubgroupLiftHolds(p2, q2, g2) {
		return nil, nil, common.Wrap(common.ErrAssertionFailure, "dsa: subgroup lift failed for (p2, q2, g2)")
	}

	n := new(big.Int).Mul(p1, p2)
	nSquare := new(big.Int).Mul(n, n)
	gamma := bigint.LCM(new(big.Int).Sub(p1, one), new(big.Int).Sub(p2, one))
	alpha := new(big.Int).Mul(q1, q2)

	p1Square := new(big.Int).Mul(p1, p1)
	p2Square := new(big.Int).Mul(p2, p2)
	g, err := bigint.CRT([]*big.Int{p1Square, p2Square}, []*big.Int{g1, g2})
	if err != nil {
		return nil, nil, common.Wrap(err, "dsa: CRT lift of generators failed")
	}

	if new(big.Int).Mod(gamma, alpha).Sign() != 0 {
		return nil, nil, common.Wrap(common.ErrAssertionFailure, "dsa: gamma is not a multiple of alpha")
	}
	orderCheck := bigint.ModPow(g, new(big.Int).Mul(alpha, n), nSquare)
	if orderCheck.Cmp(one) != 0 {
		return nil, nil, common.Wrap(common.ErrAssertionFailure, "dsa: g^(alpha*n) != 1 mod n^2")
	}

	pub := &PublicKey{N: n, G: g, NSquare: nSquare}
	priv := &PrivateKey{P1: p1, P2: p2, Alpha: alpha}
	return pub, priv, nil
}
