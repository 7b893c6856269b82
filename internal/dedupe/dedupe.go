package dedupe

// Package dedupe provides a shared singleflight group used to deduplicate
// concurrent encounter snapshot reads. Using a centralized
// singleflight.Group ensures that only one database load runs for a given
// encounter while other callers wait for the result.

import "golang.org/x/sync/singleflight"

// EncounterGroup deduplicates encounter reads keyed by encounter UUID.
var EncounterGroup singleflight.Group
