// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package bigint

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

const mustGetRandomIntMaxBits = 8192

// RandBits returns a cryptographically uniform random integer in [0, 2^bits).
// Panics if bits is out of range or the platform CSPRNG is exhausted, mirroring
// the research code's treatment of entropy failure as unrecoverable.
func RandBits(bits int) *big.Int {
	if bits <= 0 || mustGetRandomIntMaxBits < bits {
		panic(fmt.Errorf("bigint: RandBits: bits must be in (0, %d], got %d", mustGetRandomIntMaxBits, bits))
	}
	max := new(big.Int).Lsh(one, uint(bits))
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic(errors.Wrap(err, "bigint: RandBits: rand.Reader exhausted"))
	}
	return n
}

// RandRange returns a cryptographically uniform random integer in [lo, hi].
func RandRange(lo, hi *big.Int) *big.Int {
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, one)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		panic(errors.Wrap(err, "bigint: RandRange: rand.Reader exhausted"))
	}
	return n.Add(n, lo)
}

// SampleWithoutReplacement returns k distinct indices into a sequence of
// length n, drawn uniformly without replacement (a partial Fisher-Yates
// shuffle). Used to pick the Tr entries combined into one randomizer.
func SampleWithoutReplacement(n, k int) []int {
	if k > n {
		panic(fmt.Errorf("bigint: SampleWithoutReplacement: k=%d exceeds n=%d", k, n))
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + randIntn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// randIntn returns a cryptographically uniform random integer in [0, n).
func randIntn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(errors.Wrap(err, "bigint: randIntn: rand.Reader exhausted"))
	}
	return int(v.Int64())
}
