// Package entities holds the mutable per-user game state and the action log
// record. Static definitions live in package catalog.
package entities
