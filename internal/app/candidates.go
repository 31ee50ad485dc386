package app

import (
	"github.com/dkeye/Relay/internal/core"
	"github.com/dkeye/Relay/internal/domain"
	"github.com/rs/zerolog/log"
)

// CandidateBuffer holds one FIFO of undelivered candidates per direction.
type CandidateBuffer struct {
	queues [2][]core.Frame
}

func (b *CandidateBuffer) Push(d domain.Direction, f core.Frame) {
	b.queues[d] = append(b.queues[d], f)
}

func (b *CandidateBuffer) Len(d domain.Direction) int {
	return len(b.queues[d])
}

// Clear empties the queue for d and returns how many frames were discarded.
func (b *CandidateBuffer) Clear(d domain.Direction) int {
	n := len(b.queues[d])
	b.queues[d] = nil
	return n
}

// drain delivers queued frames in arrival order while dst stays open and
// then empties the queue. It returns the number of frames handed to dst.
func (b *CandidateBuffer) drain(d domain.Direction, dst core.SignalConnection) int {
	sent := 0
	for _, f := range b.queues[d] {
		if dst == nil || !dst.IsOpen() {
			break
		}
		if send(dst, f) {
			sent++
		}
	}
	b.Clear(d)
	return sent
}

// EnqueueOrForward sends a candidate to the live destination of d, or
// queues it while that role is unbound or its connection is not open.
func (s *Session) EnqueueOrForward(d domain.Direction, f core.Frame) {
	dst := s.roles.holder(d.Dest())
	if dst != nil && dst.IsOpen() {
		if send(dst, f) {
			log.Debug().Str("module", "app.candidates").Str("direction", d.String()).Str("to", dst.ID()).Msg("candidate forwarded")
		}
		return
	}
	s.pending.Push(d, f)
	log.Info().Str("module", "app.candidates").Str("direction", d.String()).Int("pending", s.pending.Len(d)).Msg("candidate buffered")
}

// Flush delivers the backlog for d to dst. Calling it on an empty queue is a no-op.
func (s *Session) Flush(d domain.Direction, dst core.SignalConnection) {
	if s.pending.Len(d) == 0 {
		return
	}
	n := s.pending.drain(d, dst)
	log.Info().Str("module", "app.candidates").Str("direction", d.String()).Int("sent", n).Msg("candidates flushed")
}
