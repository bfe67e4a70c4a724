// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package bigint is the arithmetic facade used by the Paillier keypair
// factory and cipher engine: modular exponentiation and inverse, gcd/lcm,
// CRT reconstruction, strong-prime and DSA-parameter generation, and the
// random-sampling primitives the precomputation tables need. None of this
// is constant-time; the research code it is grounded on is explicit that
// variable-time arithmetic is acceptable here.
package bigint

import (
	"math/big"

	"github.com/binance-chain/paillier-variants/common"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// ModPow computes base^exp mod m by square-and-multiply. Variable-time.
func ModPow(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// ModInverse computes the modular inverse of a mod m, returning
// common.ErrNotInvertible when gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, common.Wrapf(common.ErrNotInvertible, "gcd(%s, %s) != 1", a.String(), m.String())
	}
	return inv, nil
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

// LCM returns the least common multiple of a and b.
func LCM(a, b *big.Int) *big.Int {
	g := GCD(a, b)
	l := new(big.Int).Div(a, g)
	return l.Mul(l, b)
}

// L implements the Paillier L-function: L(u, n) = (u-1)/n, valid when u = 1 (mod n).
func L(u, n *big.Int) *big.Int {
	t := new(big.Int).Sub(u, one)
	return t.Div(t, n)
}
