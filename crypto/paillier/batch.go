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

// GenerateMessageBatch returns count uniformly random plaintexts suitable for
// encryption under kp: in [0, n) generally, or narrowed to
// [0, 2^TableBitWidth) when kp's scheme carries a message table, so every
// generated message is guaranteed encryptable. This is the batch-generator
// hook spec.md §1 calls out for the (out of scope) benchmark driver.
func (kp *Keypair) GenerateMessageBatch(count int) []*big.Int {
	bound := new(big.Int).Set(kp.Pub.N)
	if kp.Scheme.usesTm() {
		width := common.TableBitWidth(len(kp.Tables.Tm[0]))
		tableBound := new(big.Int).Lsh(one, uint(width))
		if tableBound.Cmp(bound) < 0 {
			bound = tableBound
		}
	}

	msgs := make([]*big.Int, count)
	for i := range msgs {
		msgs[i] = bigint.RandRange(zero, new(big.Int).Sub(bound, one))
	}
	return msgs
}
