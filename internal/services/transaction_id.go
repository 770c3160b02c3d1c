package services

import (
	"strconv"
	"time"

	"github.com/jaevor/go-nanoid"
)

const transactionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var transactionIDSuffix = mustSuffixGenerator()

func mustSuffixGenerator() func() string {
	gen, err := nanoid.CustomASCII(transactionIDAlphabet, 6)
	if err != nil {
		panic(err)
	}
	return gen
}

// NewTransactionID returns a candidate merchant transaction id of the form
// T<unix millis><6 uppercase alphanumerics>. Uniqueness is not guaranteed.
func NewTransactionID() string {
	return transactionIDAt(time.Now())
}

func transactionIDAt(now time.Time) string {
	return "T" + strconv.FormatInt(now.UnixMilli(), 10) + transactionIDSuffix()
}
