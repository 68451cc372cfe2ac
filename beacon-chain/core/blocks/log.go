package blocks

import (
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "blocks")

// gwei renders an amount with thousands separators over the full uint64 range.
func gwei(v uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(v))
}
