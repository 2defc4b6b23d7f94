// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/balabhaskar27/maza/chaincfg"
)

// ThresholdState tracks the state of a versionbits deployment as defined in
// BIP0009.
type ThresholdState int

const (
	// ThresholdDefined is the first state for each deployment. It is set
	// for all blocks before the deployment's start time.
	ThresholdDefined ThresholdState = iota

	// ThresholdStarted is the state for a deployment once its start time
	// has been reached and voting may begin.
	ThresholdStarted

	// ThresholdLockedIn is the state for a deployment during the retarget
	// period which follows the first retarget period that has more than
	// the required number of votes for the deployment.
	ThresholdLockedIn

	// ThresholdActive is the state for a deployment for all blocks after a
	// retarget period in which the deployment was in the locked in state,
	// and optionally once a minimum activation height has been reached.
	ThresholdActive

	// ThresholdFailed is the state for a deployment once its expiration
	// time has been reached without it becoming locked in.
	ThresholdFailed
)

func (t ThresholdState) String() string {
	switch t {
	case ThresholdDefined:
		return "defined"
	case ThresholdStarted:
		return "started"
	case ThresholdLockedIn:
		return "locked in"
	case ThresholdActive:
		return "active"
	case ThresholdFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// calcThresholdState walks backwards in MinerConfirmationWindow-sized
// strides from entry, computing the BIP0009 state of deployment at the
// retarget period entry belongs to.
//
// A nil entry (no blocks yet) is ThresholdDefined.
func calcThresholdState(idx BlockIndexer, entry Entry, deploymentID int, params *chaincfg.Params) ThresholdState {
	deployment := &params.Deployments[deploymentID]
	confirmationWindow := int32(params.MinerConfirmationWindow)

	if entry == nil || confirmationWindow == 0 {
		return ThresholdDefined
	}

	// Collect one representative entry per retarget period from entry's
	// period back to genesis, so the transition rules below can be applied
	// oldest period first.
	var periods []Entry
	cursor := entry
	for cursor != nil {
		periods = append(periods, cursor)
		periodStart := (cursor.Height() + 1) - confirmationWindow
		for cursor != nil && cursor.Height() >= periodStart {
			cursor = idx.Prev(cursor)
		}
	}

	state := ThresholdDefined
	for i := len(periods) - 1; i >= 0; i-- {
		periodTip := periods[i]

		switch state {
		case ThresholdDefined:
			if deployment.DeploymentStarter != nil {
				if started, _ := deployment.DeploymentStarter.HasStarted(periodTip.Header()); started {
					state = ThresholdStarted
				}
			}

		case ThresholdStarted:
			if deployment.DeploymentEnder != nil {
				if ended, _ := deployment.DeploymentEnder.HasEnded(periodTip.Header()); ended {
					state = ThresholdFailed
					break
				}
			}

			threshold := deployment.CustomActivationThreshold
			if threshold == 0 {
				threshold = params.RuleChangeActivationThreshold
			}

			count := uint32(0)
			b := periodTip
			for j := int32(0); j < confirmationWindow && b != nil; j++ {
				if (uint32(b.Header().Version)>>deployment.BitNumber)&1 != 0 {
					count++
				}
				b = idx.Prev(b)
			}
			if count >= threshold {
				state = ThresholdLockedIn
			}

		case ThresholdLockedIn:
			state = ThresholdActive
		}
	}

	if state == ThresholdActive && deployment.MinActivationHeight != 0 &&
		uint32(entry.Height()+1) < deployment.MinActivationHeight {
		state = ThresholdLockedIn
	}

	if deployment.AlwaysActiveHeight != 0 && uint32(entry.Height()+1) >= deployment.AlwaysActiveHeight {
		return ThresholdActive
	}

	return state
}

// IsMinotaurXEnabled reports whether the MinotaurX deployment is active as
// of parent, the standard collaborator query both the retargeters and the
// Hive proof validator make before trusting the post-fork code paths.
func IsMinotaurXEnabled(idx BlockIndexer, parent Entry, params *chaincfg.Params) bool {
	return calcThresholdState(idx, parent, chaincfg.DeploymentMinotaurX, params) == ThresholdActive
}

// VersionBitsState exposes calcThresholdState for any deployment, for
// callers (tests, diagnostics) that need the raw state rather than just the
// MinotaurX-specific boolean.
func VersionBitsState(idx BlockIndexer, entry Entry, deploymentID int, params *chaincfg.Params) ThresholdState {
	return calcThresholdState(idx, entry, deploymentID, params)
}
