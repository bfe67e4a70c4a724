// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package bigint

import (
	"crypto/rand"
	"math/big"
)

const dsaGeneratorSearchTries = 4096

// DSAParams generates a DSA-style subgroup parameter triple (p, q, g) with p
// prime of exactly bits bits, q a large prime divisor of p-1, and g an
// element of order q in Z*_p. Loops until a p of the requested bit length is
// found; this is the retryable step the keypair factory calls twice per key
// (once per prime factor of n).
func DSAParams(bits int) (p, q, g *big.Int) {
	qBits := bits / 2
	for {
		q = mustRandPrime(qBits)
		if cand, ok := findPWithSubgroup(bits, qBits, q); ok {
			p = cand
			break
		}
	}
	g = findGeneratorOfOrder(p, q)
	return p, q, g
}

func mustRandPrime(bits int) *big.Int {
	q, err := rand.Prime(rand.Reader, bits)
	if err != nil {
		// fall back to testing random odd candidates with the top bit
		// set, which also produces primes of an exact bit length.
		for {
			cand := RandBits(bits)
			cand.SetBit(cand, bits-1, 1)
			cand.SetBit(cand, 0, 1)
			if cand.ProbablyPrime(primeTestRounds) {
				return cand
			}
		}
	}
	return q
}

// findPWithSubgroup searches for p = k*q + 1 of the requested bit length that
// is prime, trying random cofactors k.
func findPWithSubgroup(bits, qBits int, q *big.Int) (*big.Int, bool) {
	kBits := bits - qBits
	if kBits < 1 {
		kBits = 1
	}
	for tries := 0; tries < dsaGeneratorSearchTries; tries++ {
		k := RandBits(kBits)
		if k.Sign() == 0 {
			continue
		}
		p := new(big.Int).Mul(k, q)
		p.Add(p, one)
		if p.BitLen() != bits {
			continue
		}
		if p.ProbablyPrime(primeTestRounds) {
			return p, true
		}
	}
	return nil, false
}

// findGeneratorOfOrder returns an element of Z*_p of order exactly q, given
// that q divides p-1 and q is prime.
func findGeneratorOfOrder(p, q *big.Int) *big.Int {
	exp := new(big.Int).Div(new(big.Int).Sub(p, one), q)
	for {
		h := RandRange(two, new(big.Int).Sub(p, two))
		g := ModPow(h, exp, p)
		if g.Cmp(one) != 0 {
			return g
		}
	}
}

// SubgroupLiftHolds checks the invariant g^(q*p) = 1 (mod p^2), which this
// research code requires of every DSA-generated (p, q, g) triple before it
// is used to build a Paillier generator.
func SubgroupLiftHolds(p, q, g *big.Int) bool {
	p2 := new(big.Int).Mul(p, p)
	qp := new(big.Int).Mul(q, p)
	return ModPow(g, qp, p2).Cmp(one) == 0
}
