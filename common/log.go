// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import logging "github.com/ipfs/go-log"

// Logger is the package-wide diagnostic logger, used only to report progress
// during the slow key-generation and table-precomputation phases. The serving
// path (Encrypt/Decrypt/Add) never logs.
var Logger = logging.Logger("paillier")

// SetLogLevel adjusts the verbosity of Logger. level is one of the strings
// accepted by github.com/ipfs/go-log, e.g. "debug", "info", "warn", "error".
func SetLogLevel(level string) error {
	return logging.SetLogLevel("paillier", level)
}
