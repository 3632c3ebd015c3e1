package rng

import "sync"

// Scripted is a dice.Roller that replays faces from a script. Faces are
// clamped into [1, size]; Max and Min are convenient script entries. When
// the script runs out the last face repeats.
type Scripted struct {
	mu    sync.Mutex
	faces []int
	pos   int
}

// Script faces meaning "highest face" and "lowest face" whatever the die size
const (
	Max = int(^uint(0) >> 1)
	Min = 1
)

// NewScripted returns a roller replaying faces in order
func NewScripted(faces ...int) *Scripted {
	if len(faces) == 0 {
		faces = []int{Min}
	}
	return &Scripted{faces: faces}
}

// Roll returns the next scripted face clamped to the die size
func (r *Scripted) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	face := r.faces[len(r.faces)-1]
	if r.pos < len(r.faces) {
		face = r.faces[r.pos]
		r.pos++
	}
	if face > size {
		face = size
	}
	if face < 1 {
		face = 1
	}
	return face, nil
}

// RollN rolls count scripted faces
func (r *Scripted) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		face, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = face
	}
	return out, nil
}
