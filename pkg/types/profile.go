// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared vocabulary of the toolkit: save profiles,
// anchor positions, batch statistics, and per-operation configuration.
package types

// SaveProfile selects one of two mutually exclusive document save policies.
// Exactly one profile governs a given save call.
type SaveProfile int

const (
	// ProfilePreserving writes a full, non-incremental rewrite with no object
	// garbage collection, no stream cleaning, and no recompression. Used when
	// existing digital signatures should stay intact (best-effort, byte-level).
	ProfilePreserving SaveProfile = iota

	// ProfileStandard garbage-collects unused and duplicate objects and
	// compresses streams. Used when file size matters more than signatures.
	ProfileStandard
)

// ProfileFor maps the user-facing preserve-signatures switch to a profile.
func ProfileFor(preserveSignatures bool) SaveProfile {
	if preserveSignatures {
		return ProfilePreserving
	}
	return ProfileStandard
}

// String returns the profile name.
func (p SaveProfile) String() string {
	if p == ProfilePreserving {
		return "preserving"
	}
	return "standard"
}
