package app

import (
	"errors"

	"github.com/dkeye/Relay/internal/core"
	"github.com/dkeye/Relay/internal/domain"
	"github.com/rs/zerolog/log"
)

// Session is the one signaling session a relay process serves.
// It is not safe for concurrent use; Router serializes access to it.
type Session struct {
	roles   roleBindings
	offer   OfferCache
	pending CandidateBuffer
}

func NewSession() *Session {
	return &Session{}
}

// Holder returns the connection bound to r, or nil.
func (s *Session) Holder(r domain.Role) core.SignalConnection {
	return s.roles.holder(r)
}

// RoleOf reports which role conn currently holds.
func (s *Session) RoleOf(conn core.SignalConnection) domain.Role {
	return s.roles.roleOf(conn)
}

// Status is a read-only view of the session for diagnostics.
type Status struct {
	Producer          string `json:"producer,omitempty"`
	Consumer          string `json:"consumer,omitempty"`
	OfferCached       bool   `json:"offer_cached"`
	PendingToConsumer int    `json:"pending_to_consumer"`
	PendingToProducer int    `json:"pending_to_producer"`
}

func (s *Session) Status() Status {
	st := Status{
		PendingToConsumer: s.pending.Len(domain.ToConsumer),
		PendingToProducer: s.pending.Len(domain.ToProducer),
	}
	if p := s.roles.producer; p != nil {
		st.Producer = p.ID()
	}
	if c := s.roles.consumer; c != nil {
		st.Consumer = c.ID()
	}
	_, st.OfferCached = s.offer.Last()
	return st
}

// send delivers f to conn if it is open. A connection that closed between
// the check and the send is not an error; the frame is simply lost.
func send(conn core.SignalConnection, f core.Frame) bool {
	if conn == nil || !conn.IsOpen() {
		return false
	}
	if err := conn.TrySend(f); err != nil {
		ev := log.Debug()
		if errors.Is(err, core.ErrBackpressure) {
			ev = log.Warn()
		}
		ev.Err(err).Str("module", "app.session").Str("conn", conn.ID()).Msg("send dropped")
		return false
	}
	return true
}
