// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package bigint_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/binance-chain/paillier-variants/crypto/bigint"
)

func TestModPow(t *testing.T) {
	got := bigint.ModPow(big.NewInt(4), big.NewInt(13), big.NewInt(497))
	assert.Equal(t, big.NewInt(445), got)
}

func TestModInverse(t *testing.T) {
	inv, err := bigint.ModInverse(big.NewInt(3), big.NewInt(11))
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(4), inv)
}

func TestModInverseNotInvertible(t *testing.T) {
	_, err := bigint.ModInverse(big.NewInt(6), big.NewInt(9))
	assert.Error(t, err)
}

func TestGCDLCM(t *testing.T) {
	assert.Equal(t, big.NewInt(6), bigint.GCD(big.NewInt(54), big.NewInt(24)))
	assert.Equal(t, big.NewInt(36), bigint.LCM(big.NewInt(12), big.NewInt(18)))
}

func TestL(t *testing.T) {
	u := big.NewInt(21)
	n := big.NewInt(3)
	assert.Equal(t, big.NewInt(6), bigint.L(u, n))
}

func TestCRT(t *testing.T) {
	// x = 2 mod 3, x = 3 mod 5, x = 2 mod 7 => x = 23
	moduli := []*big.Int{big.NewInt(3), big.NewInt(5), big.NewInt(7)}
	residues := []*big.Int{big.NewInt(2), big.NewInt(3), big.NewInt(2)}
	got, err := bigint.CRT(moduli, residues)
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(23), got)
}

func TestCRTMismatchedLengths(t *testing.T) {
	_, err := bigint.CRT([]*big.Int{big.NewInt(3)}, nil)
	assert.Error(t, err)
}

func TestRandBitsWithinRange(t *testing.T) {
	for i := 0; i < 20; i++ {
		v := bigint.RandBits(16)
		assert.True(t, v.Sign() >= 0)
		assert.True(t, v.BitLen() <= 16)
	}
}

func TestRandRangeWithinBounds(t *testing.T) {
	lo, hi := big.NewInt(10), big.NewInt(20)
	for i := 0; i < 50; i++ {
		v := bigint.RandRange(lo, hi)
		assert.True(t, v.Cmp(lo) >= 0)
		assert.True(t, v.Cmp(hi) <= 0)
	}
}

func TestSampleWithoutReplacementDistinct(t *testing.T) {
	idxs := bigint.SampleWithoutReplacement(100, 8)
	assert.Len(t, idxs, 8)
	seen := map[int]bool{}
	for _, idx := range idxs {
		assert.False(t, seen[idx], "index %d repeated", idx)
		assert.True(t, idx >= 0 && idx < 100)
		seen[idx] = true
	}
}

func TestStrongPrime(t *testing.T) {
	p := bigint.StrongPrime(64)
	assert.Equal(t, 64, p.BitLen())
	assert.True(t, p.ProbablyPrime(30))
	q := new(big.Int).Sub(p, big.NewInt(1))
	q.Div(q, big.NewInt(2))
	assert.True(t, q.ProbablyPrime(30), "(p-1)/2 must be prime")
}

func TestDSAParams(t *testing.T) {
	p, q, g := bigint.DSAParams(64)
	assert.Equal(t, 64, p.BitLen())
	assert.True(t, p.ProbablyPrime(30))
	assert.True(t, q.ProbablyPrime(30))
	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	assert.Equal(t, big.NewInt(0), new(big.Int).Mod(pMinus1, q))
	assert.True(t, bigint.SubgroupLiftHolds(p, q, g))
}
