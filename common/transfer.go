package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

var (
	stakePrefix  = []byte{0x01}
	refundPrefix = []byte{0x02}
	awardPrefix  = []byte{0x03}
	tipPrefix    = []byte{0x04}
)

// StakeTransferDetails marks a GAS transfer pulling an activation deposit
// into the contract. OnNEP17Payment recognizes incoming transfers by this
// marker and rejects anything else.
func StakeTransferDetails() []byte {
	return stakePrefix
}

// RefundTransferDetails marks a deposit refund pushed to the beneficiary of
// account deactivation.
func RefundTransferDetails() []byte {
	return refundPrefix
}

// AwardTransferDetails marks a forfeited stake pushed to the winning
// reporter of a resolved report.
func AwardTransferDetails(reportID int) []byte {
	var buf interface{} = reportID
	return append(awardPrefix, buf.([]byte)...)
}

// TipTransferDetails marks a tip routed directly from a tipper to a post
// author.
func TipTransferDetails(postID int) []byte {
	var buf interface{} = postID
	return append(tipPrefix, buf.([]byte)...)
}

// AbortWithMessage calls `runtime.Log` with passed message
// and calls `ABORT` opcode.
func AbortWithMessage(msg string) {
	runtime.Log(msg)
	util.Abort()
}
