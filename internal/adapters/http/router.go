package http

import (
	"context"

	"github.com/dkeye/Intercom/internal/adapters/signal"
	"github.com/dkeye/Intercom/internal/config"
	transport "github.com/dkeye/Intercom/internal/transport/http"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const clientTokenKey = "client_token"

// ClientTokenMiddleware pins a stable token to the browser through the session
// cookie. It only correlates log lines across reconnects; connection ids are
// fresh per socket.
func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		token, _ := session.Get(clientTokenKey).(string)
		if token == "" {
			token = uuid.NewString()
			session.Set(clientTokenKey, token)
			if err := session.Save(); err != nil {
				log.Warn().Err(err).Str("module", "adapters.http").Msg("save client token")
			}
		}
		c.Set(clientTokenKey, token)
		c.Next()
	}
}

func SetupRouter(ctx context.Context, cfg *config.Config, ctrl *signal.SignalWSController) (*gin.Engine, error) {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	iceServers, err := cfg.WebRTCICEServers()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{Path: "/", MaxAge: 3600 * 24 * 7, HttpOnly: true})
	r.Use(sessions.Sessions("IntercomSessions", store))
	r.Use(ClientTokenMiddleware())

	r.GET("/healthz", transport.HandleHealth)

	api := r.Group("/api")
	transport.Snapshots{Coord: ctrl.Coord, ICEServers: iceServers}.Register(api)

	api.GET("/ws/signal", func(c *gin.Context) {
		log.Debug().Str("module", "adapters.http").Str("client", c.GetString(clientTokenKey)).Msg("ws signal endpoint hit")
		ctrl.HandleSignal(ctx, c)
	})

	log.Info().Str("module", "adapters.http").Int("ice_servers", len(iceServers)).Msg("router setup")
	return r, nil
}
