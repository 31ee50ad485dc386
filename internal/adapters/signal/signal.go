package signal

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/dkeye/Relay/internal/app"
	"github.com/dkeye/Relay/internal/core"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
)

// Options tunes the WebSocket transport.
type Options struct {
	ReadLimit    int64
	PingPeriod   time.Duration
	WriteTimeout time.Duration
	SendBuffer   int
}

func (o Options) pongWait() time.Duration {
	return o.PingPeriod * 10 / 9
}

type SignalWSController struct {
	Router  *app.Router
	Limiter *ConnRateLimiter
	Opts    Options
}

func NewSignalWSController(router *app.Router, limiter *ConnRateLimiter, opts Options) *SignalWSController {
	return &SignalWSController{
		Router:  router,
		Limiter: limiter,
		Opts:    opts,
	}
}

// wsSignalConn implements core.SignalConnection over a WebSocket.
type wsSignalConn struct {
	id   string
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *wsSignalConn) ID() string { return c.id }

func (c *wsSignalConn) IsOpen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.closed
}

func (c *wsSignalConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return core.ErrConnClosed
	}
	select {
	case c.send <- f:
	default:
		return core.ErrBackpressure
	}
	return nil
}

func (c *wsSignalConn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
}

// ClientKey is the gin context key holding the rate-limit identity of a request.
const ClientKey = "client_key"

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleSignal upgrades the request and serves the connection until it
// closes or ctx is cancelled.
func (ctl *SignalWSController) HandleSignal(ctx context.Context, c *gin.Context) {
	client := c.GetString("client_token")
	key := c.GetString(ClientKey)
	if key == "" {
		key = "ip:" + c.ClientIP()
	}
	if ctl.Limiter != nil && !ctl.Limiter.Allow(key) {
		log.Warn().Str("module", "signal").Str("client", client).Str("key", key).Msg("connection rate limited")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many connections"})
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("ws upgrade")
		return
	}

	conn := &wsSignalConn{
		id:   uuid.NewString(),
		conn: ws,
		send: make(chan core.Frame, ctl.Opts.SendBuffer),
	}
	log.Info().Str("module", "signal").Str("conn", conn.id).Str("client", client).Str("remote", c.ClientIP()).Msg("new WebSocket client connected")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg conc.WaitGroup
	wg.Go(func() { ctl.writePump(ctx, conn) })
	wg.Go(func() {
		defer cancel()
		ctl.readPump(ctx, conn)
	})
	wg.Wait()
}
