// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package paillier

import (
	"fmt"
	"math/big"
	"runtime"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/binance-chain/paillier-variants/common"
	"github.com/binance-chain/paillier-variants/crypto/bigint"
)

// workerErrors aggregates errors reported by concurrent goroutines sharing
// one work unit, guarding the accumulator with a mutex since
// multierror.Append is not itself safe for concurrent use.
type workerErrors struct {
	mu  sync.Mutex
	agg *multierror.Error
}

func (w *workerErrors) record(err error) {
	if err == nil {
		return
	}
	w.mu.Lock()
	w.agg = multierror.Append(w.agg, err)
	w.mu.Unlock()
}

func (w *workerErrors) err() error {
	return w.agg.ErrorOrNil()
}

// recoverInto turns a panicking worker (RandBits/RandRange panic when the
// platform CSPRNG is exhausted or given invalid bounds, per
// crypto/bigint/rand.go) into a recorded error instead of crashing the
// process, so a single bad worker aborts only its own table build.
func recoverInto(errs *workerErrors, label string) {
	if r := recover(); r != nil {
		errs.record(fmt.Errorf("precompute: %s worker panicked: %v", label, r))
	}
}

// buildTables fills whichever of Tm/Tr the scheme requires. Each work unit is
// one (i,j) pair for Tm or one index i for Tr; there is no shared mutable
// state between workers and results are written into pre-sized slices at
// their final index, so merge order is free. A failure in any worker aborts
// the whole build — precomputation is all-or-nothing (spec §5).
func buildTables(scheme Scheme, pub *PublicKey, power, noGnr int) (*Tables, error) {
	tables := &Tables{}

	var wg sync.WaitGroup
	errs := &workerErrors{}

	if scheme.usesTm() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm, err := buildTm(pub, power)
			if err != nil {
				errs.record(err)
				return
			}
			tables.Tm = tm
		}()
	}
	if scheme.usesTr() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr, err := buildTr(pub, power)
			if err != nil {
				errs.record(err)
				return
			}
			tables.Tr = tr
		}()
	}
	wg.Wait()

	if err := errs.err(); err != nil {
		return nil, common.Wrap(err, "precompute: table build failed")
	}
	return tables, nil
}

// buildTm fills Tm[i][j] = g^(power^i * j) mod n^2 for i in {0,1}, j in
// [0, power), splitting the B-sized column for each row across
// runtime.NumCPU() workers.
func buildTm(pub *PublicKey, power int) ([2][]*big.Int, error) {
	var tm [2][]*big.Int
	base := big.NewInt(int64(power))
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	errs := &workerErrors{}

	for i := 0; i < 2; i++ {
		row := make([]*big.Int, power)
		// exponent base: power^i
		rowBase := new(big.Int).Exp(base, big.NewInt(int64(i)), nil)

		var wg sync.WaitGroup
		chunk := (power + workers - 1) / workers
		for w := 0; w < workers; w++ {
			lo := w * chunk
			hi := lo + chunk
			if hi > power {
				hi = power
			}
			if lo >= hi {
				continue
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				defer recoverInto(errs, "tm")
				for j := lo; j < hi; j++ {
					exp := new(big.Int).Mul(rowBase, big.NewInt(int64(j)))
					row[j] = bigint.ModPow(pub.G, exp, pub.NSquare)
				}
			}(lo, hi)
		}
		wg.Wait()
		tm[i] = row
	}
	return tm, errs.err()
}

// buildTr fills Tr[i] = G^r_i mod n^2 for i in [0, power), where G = g^n mod
// n^2 and each r_i is an independent random element g^{rand_range(1,n)} mod n.
func buildTr(pub *PublicKey, power int) ([]*big.Int, error) {
	tr := make([]*big.Int, power)
	g := bigint.ModPow(pub.G, pub.N, pub.NSquare)
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	errs := &workerErrors{}

	var wg sync.WaitGroup
	chunk := (power + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > power {
			hi = power
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			defer recoverInto(errs, "tr")
			for i := lo; i < hi; i++ {
				ri := randomizerElement(pub)
				tr[i] = bigint.ModPow(g, ri, pub.NSquare)
			}
		}(lo, hi)
	}
	wg.Wait()
	return tr, errs.err()
}

// randomizerElement draws r <- g^{rand_range(1,n)} mod n, the DSA-variant
// randomizer source used both here and in encryption (spec §9: the
// randomizer's domain must be mod n, uniformly, across all DSA variants).
func randomizerElement(pub *PublicKey) *big.Int {
	exp := bigint.RandRange(one, pub.N)
	return bigint.ModPow(pub.G, exp, pub.N)
}
