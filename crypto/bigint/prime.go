// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package bigint

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/otiai10/primes"
	"github.com/pkg/errors"
)

const (
	primeTestRounds  = 30
	smallPrimeFilter = 2000
)

var smallPrimeList = primes.Until(smallPrimeFilter).List()

// StrongPrime returns a prime p of exactly bits bits such that (p-1)/2 is
// also prime (the Gordon "strong prime" condition this research code relies
// on). Loops until success; a trial-division pre-filter against small primes
// (grounded on the sieve cache the teacher uses to speed up proof
// verification) rejects most composite candidates before the expensive
// Miller-Rabin pass.
func StrongPrime(bits int) *big.Int {
	for {
		p, ok := tryStrongPrimeCandidate(bits)
		if ok {
			return p
		}
	}
}

func tryStrongPrimeCandidate(bits int) (*big.Int, bool) {
	qBits := bits - 1
	q, err := randOddOfBitLen(qBits)
	if err != nil {
		panic(errors.Wrap(err, "bigint: StrongPrime: rand.Reader exhausted"))
	}
	if !passesSmallPrimeFilter(q) {
		return nil, false
	}
	p := new(big.Int).Lsh(q, 1)
	p.Add(p, one)
	if p.BitLen() != bits {
		return nil, false
	}
	if !passesSmallPrimeFilter(p) {
		return nil, false
	}
	if !q.ProbablyPrime(primeTestRounds) {
		return nil, false
	}
	if !p.ProbablyPrime(primeTestRounds) {
		return nil, false
	}
	return p, true
}

// randOddOfBitLen draws a random odd integer with exactly bits bits, with the
// top two bits set so a product of two such values never falls a bit short.
func randOddOfBitLen(bits int) (*big.Int, error) {
	nBytes := (bits + 7) / 8
	b := uint(bits % 8)
	if b == 0 {
		b = 8
	}
	buf := make([]byte, nBytes)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, err
	}
	buf[0] &= uint8(1<<b - 1)
	if b >= 2 {
		buf[0] |= 3 << (b - 2)
	} else {
		buf[0] |= 1
		if len(buf) > 1 {
			buf[1] |= 0x80
		}
	}
	buf[len(buf)-1] |= 1
	return new(big.Int).SetBytes(buf), nil
}

func passesSmallPrimeFilter(n *big.Int) bool {
	for _, sp := range smallPrimeList {
		m := big.NewInt(sp)
		if n.Cmp(m) == 0 {
			continue
		}
		if new(big.Int).Mod(n, m).Sign() == 0 {
			return false
		}
	}
	return true
}
