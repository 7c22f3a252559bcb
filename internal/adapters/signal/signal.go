package signal

import (
	"context"
	"net/http"
	"time"

	"github.com/dkeye/Intercom/internal/app"
	"github.com/dkeye/Intercom/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Options tunes the websocket side of the controller.
type Options struct {
	ReadLimit  int64
	WriteWait  time.Duration
	PingPeriod time.Duration
	PongWait   time.Duration
	SendBuffer int
}

func (o Options) withDefaults() Options {
	if o.ReadLimit <= 0 {
		o.ReadLimit = 65536
	}
	if o.WriteWait <= 0 {
		o.WriteWait = 5 * time.Second
	}
	if o.PingPeriod <= 0 {
		o.PingPeriod = 25 * time.Second
	}
	if o.PongWait <= o.PingPeriod {
		o.PongWait = o.PingPeriod * 12 / 5
	}
	if o.SendBuffer <= 0 {
		o.SendBuffer = 64
	}
	return o
}

type SignalWSController struct {
	Coord   *app.Coordinator
	Hub     *Hub
	Invites *EventRateLimiter

	opts Options
}

func NewSignalWSController(coord *app.Coordinator, hub *Hub, invites *EventRateLimiter, opts Options) *SignalWSController {
	return &SignalWSController{
		Coord:   coord,
		Hub:     hub,
		Invites: invites,
		opts:    opts.withDefaults(),
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleSignal upgrades the request and runs the connection until either side
// hangs up or ctx ends.
func (ctl *SignalWSController) HandleSignal(ctx context.Context, c *gin.Context) {
	id := domain.ConnID(uuid.NewString())
	logger := log.With().
		Str("module", "signal").
		Str("conn", string(id)).
		Str("client", c.GetString("client_token")).
		Logger()

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error().Err(err).Msg("ws upgrade")
		return
	}
	logger.Info().Str("remote", c.Request.RemoteAddr).Msg("new WS connection")

	conn := newWSSignalConn(ws, ctl.opts.SendBuffer)
	connCtx, cancel := context.WithCancel(ctx)

	ctl.Hub.Add(id, conn)
	go ctl.writePump(connCtx, id, conn)
	ctl.Coord.OnConnect(id)

	go func() {
		<-connCtx.Done()
		conn.Close()
	}()
	go ctl.readPump(cancel, id, conn)
}

// disconnect runs once per connection, after its read pump has stopped.
func (ctl *SignalWSController) disconnect(id domain.ConnID) {
	ctl.Hub.Remove(id)
	ctl.Coord.OnDisconnect(id)
	ctl.Invites.Forget(id)
}
