package app

import (
	"sync"

	"github.com/dkeye/Relay/internal/core"
	"github.com/dkeye/Relay/internal/domain"
	"github.com/rs/zerolog/log"
)

// Router applies inbound frames to the Session one at a time.
type Router struct {
	mu      sync.Mutex
	session *Session
}

func NewRouter(s *Session) *Router {
	if s == nil {
		s = NewSession()
	}
	return &Router{session: s}
}

// HandleFrame decodes raw and dispatches it. Undecodable frames are logged
// and ignored; the connection stays open and no state changes.
func (r *Router) HandleFrame(conn core.SignalConnection, raw []byte) {
	msg, err := core.Decode(raw)
	if err != nil {
		log.Warn().Err(err).Str("module", "app.router").Str("conn", conn.ID()).Msg("bad frame")
		return
	}
	r.Dispatch(conn, msg)
}

// Dispatch routes one decoded message sent on conn.
func (r *Router) Dispatch(conn core.SignalConnection, msg *core.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session
	switch msg.Role {
	case domain.RoleProducer:
		s.RegisterProducer(conn)
		return
	case domain.RoleConsumer:
		s.RegisterConsumer(conn)
		return
	}

	logger := log.With().Str("module", "app.router").Str("conn", conn.ID()).Logger()
	switch msg.Type {
	case domain.TypeOffer:
		f := core.Encode(msg)
		s.offer.Record(f)
		if consumer := s.Holder(domain.RoleConsumer); consumer != nil && consumer.IsOpen() {
			if send(consumer, f) {
				logger.Info().Str("to", consumer.ID()).Msg("offer forwarded")
			}
		} else {
			logger.Info().Msg("no consumer, offer cached")
		}

	case domain.TypeAnswer:
		producer := s.Holder(domain.RoleProducer)
		if producer == nil || !producer.IsOpen() {
			logger.Warn().Msg("no active producer, answer dropped")
			return
		}
		if send(producer, core.Encode(msg)) {
			logger.Info().Str("to", producer.ID()).Msg("answer forwarded")
		}
		s.Flush(domain.ToProducer, producer)

	case domain.TypeCandidate:
		d, ok := domain.DirectionFrom(s.RoleOf(conn))
		if !ok {
			logger.Warn().Msg("candidate from unregistered connection dropped")
			return
		}
		s.EnqueueOrForward(d, core.Encode(msg))

	default:
		logger.Warn().Str("type", string(msg.Type)).Str("role", msg.RoleRaw).Msg("unknown message")
	}
}

// Disconnect releases whatever role conn still holds. It is the transport's
// closed-notification and is safe to call for connections that never registered.
func (r *Router) Disconnect(conn core.SignalConnection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wasProducer := r.session.ClearIfProducer(conn)
	wasConsumer := r.session.ClearIfConsumer(conn)
	log.Info().Str("module", "app.router").Str("conn", conn.ID()).
		Bool("producer", wasProducer).Bool("consumer", wasConsumer).Msg("client disconnected")
}

// Status returns a consistent snapshot of the session.
func (r *Router) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Status()
}
