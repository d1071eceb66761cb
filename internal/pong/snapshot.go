package pong

import (
	"encoding/binary"
	"hash/fnv"
)

// Snapshot captures the complete mutable state of the world in primitive
// types, for determinism checks and debugging. Positions are scaled by 1000
// to keep sub-unit precision in integers.
type Snapshot struct {
	Tick       uint64
	BallX      int64
	BallY      int64
	BallVX     int64 // Sign only: always ±1
	BallVY     int64
	LeftY      int64
	RightY     int64
	Collisions uint64
}

// snapshotScale preserves three decimal places of world coordinates.
const snapshotScale = 1000

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       w.ticks,
		LeftY:      int64(w.Left().Pos.Y * snapshotScale),
		RightY:     int64(w.Right().Pos.Y * snapshotScale),
		Collisions: w.total,
	}
	if ball := w.Ball(); ball != nil {
		s.BallX = int64(ball.Pos.X * snapshotScale)
		s.BallY = int64(ball.Pos.Y * snapshotScale)
		s.BallVX = int64(ball.Vel.X)
		s.BallVY = int64(ball.Vel.Y)
	}
	return s
}

// Hash returns a stable FNV-1a hash over the snapshot fields. Two runs with
// identical inputs must produce identical hashes tick for tick.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range []uint64{
		s.Tick,
		uint64(s.BallX), uint64(s.BallY),
		uint64(s.BallVX), uint64(s.BallVY),
		uint64(s.LeftY), uint64(s.RightY),
		s.Collisions,
	} {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	return h.Sum64()
}
