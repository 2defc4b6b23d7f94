// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "fmt"

// ErrorKind partitions every ErrorCode into one of the four kinds the core
// distinguishes: a ProgrammerError should never happen in a correctly
// operating caller and is appropriate to panic on; UnknownNetwork and
// ValidationReject are returned to the caller as ordinary values;
// TransientUnavailable signals that the answer depends on data the caller
// doesn't currently have (a pruned block, an in-progress initial download)
// rather than on the candidate block itself being invalid.
type ErrorKind int

const (
	KindProgrammerError ErrorKind = iota
	KindUnknownNetwork
	KindValidationReject
	KindTransientUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindProgrammerError:
		return "programmer error"
	case KindUnknownNetwork:
		return "unknown network"
	case KindValidationReject:
		return "validation reject"
	case KindTransientUnavailable:
		return "transient unavailable"
	default:
		return "unknown error kind"
	}
}

// ErrorCode identifies a specific validation failure reason.
type ErrorCode int

const (
	// ErrNoTransactions indicates a block has no transactions.
	ErrNoTransactions ErrorCode = iota

	// ErrNoTxInputs indicates a transaction has no inputs.
	ErrNoTxInputs

	// ErrFirstTxNotCoinbase indicates a block's first transaction is not a
	// coinbase transaction.
	ErrFirstTxNotCoinbase

	// ErrMissingParent indicates a block's claimed parent is not present in
	// the block index. Whether this is a ValidationReject or a
	// TransientUnavailable depends on context, so callers that can tell the
	// difference (e.g. "parent simply hasn't arrived yet" vs. "parent hash
	// is garbage") should wrap this with the appropriate kind themselves;
	// by default it is treated as a rejection.
	ErrMissingParent

	// ErrBadProofOfWork indicates the block's hash does not satisfy its
	// claimed target, or the target itself is invalid (negative, zero,
	// overflowed, or above the network's pow-limit envelope).
	ErrBadProofOfWork

	// ErrMinotaurXNotActive indicates a Hive block was presented before the
	// MinotaurX deployment activated at its parent.
	ErrMinotaurXNotActive

	// ErrTooManyConsecutiveHiveBlocks indicates a Hive block would extend a
	// run of consecutive Hive blocks beyond MaxConsecutiveHiveBlocks.
	ErrTooManyConsecutiveHiveBlocks

	// ErrHiveBlockContainsBCT indicates a Hive block contains a Bee
	// Creation Transaction, which is forbidden.
	ErrHiveBlockContainsBCT

	// ErrBadHiveCoinbase indicates the Hive block's coinbase does not have
	// the required output count or OP_RETURN OP_BEE payload shape.
	ErrBadHiveCoinbase

	// ErrBeeHashTargetNotMet indicates the bee-hash puzzle solution in the
	// coinbase payload does not beat the current Hive target.
	ErrBeeHashTargetNotMet

	// ErrBadHiveSignature indicates the recoverable signature over the
	// deterministic challenge does not recover to the honey destination
	// key.
	ErrBadHiveSignature

	// ErrBCTNotFound indicates the claimed Bee Creation Transaction could
	// not be located by either the UTXO fast path or the block-scan
	// fallback.
	ErrBCTNotFound

	// ErrBCTHeightMismatch indicates the BCT was found at a height
	// different from the one claimed in the coinbase payload.
	ErrBCTHeightMismatch

	// ErrBeeNotMature indicates the claimed bee has not yet cleared its
	// gestation window, or has already exceeded its lifespan.
	ErrBeeNotMature

	// ErrBadBCTScript indicates the BCT's output script does not match the
	// expected bee-creation pattern, or its embedded honey script does not
	// match the coinbase-derived honey destination.
	ErrBadBCTScript

	// ErrBadCommunityContribution indicates a BCT's community-fund
	// donation output does not match the expected amount.
	ErrBadCommunityContribution

	// ErrBeeNonceOutOfRange indicates the claimed bee nonce is not less
	// than the number of bees the BCT actually purchased.
	ErrBeeNonceOutOfRange

	// ErrPrunedBlockData indicates a census scan hit a block whose data has
	// been pruned from local storage. This is TransientUnavailable, not a
	// validation failure: the block itself was never examined.
	ErrPrunedBlockData

	// ErrInitialBlockDownload indicates a census request was refused
	// because the node has not finished its initial sync.
	ErrInitialBlockDownload
)

var errorKinds = map[ErrorCode]ErrorKind{
	ErrNoTransactions:                KindValidationReject,
	ErrNoTxInputs:                    KindValidationReject,
	ErrFirstTxNotCoinbase:            KindValidationReject,
	ErrMissingParent:                 KindValidationReject,
	ErrBadProofOfWork:                KindValidationReject,
	ErrMinotaurXNotActive:            KindValidationReject,
	ErrTooManyConsecutiveHiveBlocks:  KindValidationReject,
	ErrHiveBlockContainsBCT:          KindValidationReject,
	ErrBadHiveCoinbase:               KindValidationReject,
	ErrBeeHashTargetNotMet:           KindValidationReject,
	ErrBadHiveSignature:              KindValidationReject,
	ErrBCTNotFound:                   KindValidationReject,
	ErrBCTHeightMismatch:             KindValidationReject,
	ErrBeeNotMature:                  KindValidationReject,
	ErrBadBCTScript:                  KindValidationReject,
	ErrBadCommunityContribution:      KindValidationReject,
	ErrBeeNonceOutOfRange:            KindValidationReject,
	ErrPrunedBlockData:               KindTransientUnavailable,
	ErrInitialBlockDownload:          KindTransientUnavailable,
}

var errorCodeStrings = map[ErrorCode]string{
	ErrNoTransactions:               "ErrNoTransactions",
	ErrNoTxInputs:                   "ErrNoTxInputs",
	ErrFirstTxNotCoinbase:           "ErrFirstTxNotCoinbase",
	ErrMissingParent:                "ErrMissingParent",
	ErrBadProofOfWork:               "ErrBadProofOfWork",
	ErrMinotaurXNotActive:           "ErrMinotaurXNotActive",
	ErrTooManyConsecutiveHiveBlocks: "ErrTooManyConsecutiveHiveBlocks",
	ErrHiveBlockContainsBCT:         "ErrHiveBlockContainsBCT",
	ErrBadHiveCoinbase:              "ErrBadHiveCoinbase",
	ErrBeeHashTargetNotMet:          "ErrBeeHashTargetNotMet",
	ErrBadHiveSignature:             "ErrBadHiveSignature",
	ErrBCTNotFound:                  "ErrBCTNotFound",
	ErrBCTHeightMismatch:            "ErrBCTHeightMismatch",
	ErrBeeNotMature:                 "ErrBeeNotMature",
	ErrBadBCTScript:                 "ErrBadBCTScript",
	ErrBadCommunityContribution:     "ErrBadCommunityContribution",
	ErrBeeNonceOutOfRange:           "ErrBeeNonceOutOfRange",
	ErrPrunedBlockData:              "ErrPrunedBlockData",
	ErrInitialBlockDownload:         "ErrInitialBlockDownload",
}

// String returns the ErrorCode in human-readable form.
func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("unknown ErrorCode (%d)", int(e))
}

// Kind reports which of the four error kinds the code belongs to.
func (e ErrorCode) Kind() ErrorKind {
	if k, ok := errorKinds[e]; ok {
		return k
	}
	return KindValidationReject
}

// RuleError identifies a rule violation. It carries both the error code for
// programmatic dispatch and a human description for logs.
type RuleError struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface.
func (e RuleError) Error() string {
	return e.Description
}

// Kind reports which of the four error kinds this error belongs to.
func (e RuleError) Kind() ErrorKind {
	return e.ErrorCode.Kind()
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}
