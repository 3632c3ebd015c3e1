// Package engine implements the game rules as pure functions over loaded
// user records: HP regeneration, the sensitivity to volume transform, and
// the interact, solo, snatch, roll and item operations.
//
// Nothing here touches storage. Every function validates all of its
// preconditions before it changes a record, so a returned error always
// leaves the users exactly as they were passed in. Randomness comes from an
// rng.Source so tests can script every draw.
package engine
