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

// generateScheme1 is the strong-prime keypair strategy (spec §4.2): two
// distinct strong primes p, q sized so n=p*q has exactly nLength bits, then
// the smallest g>=2 satisfying the two Paillier invertibility conditions.
func generateScheme1(nLength int) (*PublicKey, *PrivateKey, error) {
	halfBits := nLength / 2

	var p, q, n *big.Int
	for {
		common.Logger.Debug("scheme1: searching for a pair of strong primes")
		p = bigint.StrongPrime(halfBits)
		q = bigint.StrongPrime(halfBits)
		if p.Cmp(q) == 0 {
			continue
		}
		n = new(big.Int).Mul(p, q)
		if n.BitLen() == nLength {
			break
		}
	}

	pMinus1 := new(big.Int).Sub(p, one)
	qMinus1 := new(big.Int).Sub(q, one)
	gamma := bigint.LCM(pMinus1, qMinus1)
	nSquare := new(big.Int).Mul(n, n)

	g, err := findScheme1Generator(n, nSquare, gamma)
	if err != nil {
		return nil, nil, err
	}

	pub := &PublicKey{N: n, G: g, NSquare: nSquare}
	priv := &PrivateKey{P: p, Q: q, Gamma: gamma}
	return pub, priv, nil
}

// findScheme1Generator returns the smallest g>=2 with gcd(g, n^2)=1 and
// gcd(L(g^gamma mod n^2, n), n) = 1.
func findScheme1Generator(n, nSquare, gamma *big.Int) (*big.Int, error) {
	g := new(big.Int).Set(two)
	for {
		if bigint.GCD(g, nSquare).Cmp(one) == 0 {
			gGamma := bigint.ModPow(g, gamma, nSquare)
			l := bigint.L(gGamma, n)
			if bigint.GCD(l, n).Cmp(one) == 0 {
				return new(big.Int).Set(g), nil
			}
		}
		g.Add(g, one)
		if g.BitLen() > n.BitLen()+64 {
			// Practically unreachable for random strong primes; guards
			// against spinning forever if the invariant truly cannot hold.
			return nil, common.Wrap(common.ErrAssertionFailure, "scheme1: no suitable generator found")
		}
	}
}
