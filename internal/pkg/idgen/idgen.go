// Package idgen mints action log ids
package idgen

import (
	"github.com/google/uuid"
)

// Generator hands out unique ids
type Generator interface {
	Generate() string
}

// Func adapts a plain function to Generator
type Func func() string

// Generate calls f
func (f Func) Generate() string {
	return f()
}

// TimeOrdered returns a Generator of UUIDv7 ids, which sort by creation
// time, joined to prefix with an underscore when prefix is set.
func TimeOrdered(prefix string) Generator {
	return Func(func() string {
		id, err := uuid.NewV7()
		if err != nil {
			id = uuid.New()
		}
		if prefix == "" {
			return id.String()
		}
		return prefix + "_" + id.String()
	})
}
