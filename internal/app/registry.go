package app

import (
	"github.com/dkeye/Relay/internal/core"
	"github.com/dkeye/Relay/internal/domain"
	"github.com/rs/zerolog/log"
)

// roleBindings holds at most one connection per role.
// Rebinding a role is last-writer-wins: the previous holder is neither
// notified nor closed, it just stops receiving routed frames.
type roleBindings struct {
	producer core.SignalConnection
	consumer core.SignalConnection
}

func (b *roleBindings) holder(r domain.Role) core.SignalConnection {
	switch r {
	case domain.RoleProducer:
		return b.producer
	case domain.RoleConsumer:
		return b.consumer
	}
	return nil
}

func (b *roleBindings) bind(r domain.Role, conn core.SignalConnection) core.SignalConnection {
	var prev core.SignalConnection
	switch r {
	case domain.RoleProducer:
		prev, b.producer = b.producer, conn
	case domain.RoleConsumer:
		prev, b.consumer = b.consumer, conn
	}
	return prev
}

// roleOf reports the role conn currently holds.
func (b *roleBindings) roleOf(conn core.SignalConnection) domain.Role {
	switch {
	case conn == nil:
		return domain.RoleNone
	case b.producer == conn:
		return domain.RoleProducer
	case b.consumer == conn:
		return domain.RoleConsumer
	}
	return domain.RoleNone
}

// unbind clears role r only if conn is still its holder.
func (b *roleBindings) unbind(r domain.Role, conn core.SignalConnection) bool {
	if conn == nil || b.holder(r) != conn {
		return false
	}
	b.bind(r, nil)
	return true
}

// RegisterProducer binds conn as the producer and discards candidates that
// were queued for the previous producer. A connection holds one role at a
// time, so conn first gives up the consumer role if it had it.
func (s *Session) RegisterProducer(conn core.SignalConnection) {
	s.ClearIfConsumer(conn)
	prev := s.roles.bind(domain.RoleProducer, conn)
	dropped := s.pending.Clear(domain.ToProducer)
	ev := log.Info().Str("module", "app.registry").Str("conn", conn.ID()).Int("dropped_candidates", dropped)
	if prev != nil && prev != conn {
		ev = ev.Str("superseded", prev.ID())
	}
	ev.Msg("producer registered")
}

// RegisterConsumer binds conn as the consumer, then hands it the cached
// offer followed by every candidate the producer sent while it was away.
func (s *Session) RegisterConsumer(conn core.SignalConnection) {
	s.ClearIfProducer(conn)
	prev := s.roles.bind(domain.RoleConsumer, conn)
	ev := log.Info().Str("module", "app.registry").Str("conn", conn.ID())
	if prev != nil && prev != conn {
		ev = ev.Str("superseded", prev.ID())
	}
	ev.Msg("consumer registered")

	s.offer.DeliverTo(conn)
	s.Flush(domain.ToConsumer, conn)
}

// ClearIfProducer unbinds conn from the producer role if it still holds it
// and drops the candidates waiting to be sent to it.
func (s *Session) ClearIfProducer(conn core.SignalConnection) bool {
	if !s.roles.unbind(domain.RoleProducer, conn) {
		return false
	}
	dropped := s.pending.Clear(domain.ToProducer)
	log.Info().Str("module", "app.registry").Str("conn", conn.ID()).Int("dropped_candidates", dropped).Msg("producer cleared")
	return true
}

// ClearIfConsumer is the consumer-side counterpart of ClearIfProducer.
func (s *Session) ClearIfConsumer(conn core.SignalConnection) bool {
	if !s.roles.unbind(domain.RoleConsumer, conn) {
		return false
	}
	dropped := s.pending.Clear(domain.ToConsumer)
	log.Info().Str("module", "app.registry").Str("conn", conn.ID()).Int("dropped_candidates", dropped).Msg("consumer cleared")
	return true
}
