// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

// State is the position of a form in the submission flow.
//
//	Idle -> AttemptedValid   -> Submitted
//	Idle -> AttemptedInvalid -> Idle
//
// The attempted states are passed through during a single Submit call; a
// caller only ever observes Idle or Submitted between events.
type State int

const (
	StateIdle State = iota
	StateAttemptedValid
	StateAttemptedInvalid
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAttemptedValid:
		return "attempted_valid"
	case StateAttemptedInvalid:
		return "attempted_invalid"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}
