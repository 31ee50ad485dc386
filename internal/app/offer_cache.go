package app

import (
	"github.com/dkeye/Relay/internal/core"
	"github.com/rs/zerolog/log"
)

// OfferCache keeps the latest encoded offer for consumers that arrive late.
// It is only overwritten, never cleared, so a producer disconnect leaves the
// offer in place.
type OfferCache struct {
	last core.Frame
}

func (c *OfferCache) Record(f core.Frame) {
	c.last = f
}

func (c *OfferCache) Last() (core.Frame, bool) {
	return c.last, c.last != nil
}

// DeliverTo sends the cached offer to conn if both exist and conn is open.
func (c *OfferCache) DeliverTo(conn core.SignalConnection) bool {
	if c.last == nil {
		log.Debug().Str("module", "app.offer").Msg("no cached offer yet")
		return false
	}
	if !send(conn, c.last) {
		return false
	}
	log.Info().Str("module", "app.offer").Str("conn", conn.ID()).Msg("cached offer sent")
	return true
}
