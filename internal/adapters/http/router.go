package http

import (
	"context"
	"net/http"

	"github.com/dkeye/Relay/internal/adapters/rtc"
	"github.com/dkeye/Relay/internal/adapters/signal"
	"github.com/dkeye/Relay/internal/app"
	"github.com/dkeye/Relay/internal/config"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const clientTokenKey = "ct"

// ClientTokenMiddleware gives every browser a stable id kept in the session
// cookie. It is only used to tag logs and to rate limit connections.
// Requests that did not bring a token back are keyed by client IP instead,
// so endpoints without a cookie jar are limited too.
func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		token, _ := session.Get(clientTokenKey).(string)
		if token != "" {
			c.Set(signal.ClientKey, "ct:"+token)
		} else {
			c.Set(signal.ClientKey, "ip:"+c.ClientIP())
			token = uuid.NewString()
			session.Set(clientTokenKey, token)
			if err := session.Save(); err != nil {
				log.Warn().Err(err).Str("module", "adapters.http").Msg("save session")
			}
		}
		c.Set("client_token", token)
		c.Next()
	}
}

func SetupRouter(ctx context.Context, cfg *config.Config, router *app.Router) *gin.Engine {
	switch cfg.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	secret := cfg.Secret
	if secret == "" {
		secret = uuid.NewString()
		log.Warn().Str("module", "adapters.http").Msg("no session secret configured, using an ephemeral one")
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   3600 * 24 * 7,
		HttpOnly: true,
		Secure:   cfg.TLSEnabled(),
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("RelaySession", store))
	r.Use(ClientTokenMiddleware())

	ctrl := signal.NewSignalWSController(
		router,
		signal.NewConnRateLimiter(cfg.ConnLimit, cfg.ConnInterval),
		signal.Options{
			ReadLimit:    cfg.ReadLimit,
			PingPeriod:   cfg.PingPeriod,
			WriteTimeout: cfg.WriteTimeout,
			SendBuffer:   cfg.SendBuffer,
		},
	)
	iceConfig := rtc.ConfigFromURLs(cfg.ICEServers)

	r.Static("/static", cfg.StaticPath)
	r.GET("/", func(c *gin.Context) {
		// Endpoints may open the signaling socket on the root URL.
		if websocket.IsWebSocketUpgrade(c.Request) {
			ctrl.HandleSignal(ctx, c)
			return
		}
		c.File(cfg.StaticPath + "/index.html")
	})

	log.Info().Str("module", "adapters.http").Str("static", cfg.StaticPath).Msg("router setup")

	api := r.Group("/api")

	api.GET("/ws/signal", func(c *gin.Context) {
		log.Debug().Str("module", "adapters.http").Str("client", c.GetString("client_token")).Msg("ws signal endpoint hit")
		ctrl.HandleSignal(ctx, c)
	})

	api.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, router.Status())
	})

	api.GET("/rtc-config", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"iceServers": iceConfig.ICEServers})
	})

	return r
}
