package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkeye/Intercom/internal/app"
	"github.com/dkeye/Intercom/internal/core"
	"github.com/dkeye/Intercom/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/pion/webrtc/v4"
	"github.com/stretchr/testify/require"
)

type nopRelay struct{}

func (nopRelay) SendTo(domain.ConnID, core.Event, any) {}
func (nopRelay) BroadcastAll(core.Event, any)          {}

func newTestRouter(coord *app.Coordinator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Snapshots{
		Coord:      coord,
		ICEServers: []webrtc.ICEServer{{URLs: []string{"stun:stun.example.org:3478"}}},
	}.Register(r.Group("/api"))
	r.GET("/healthz", HandleHealth)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSnapshots(t *testing.T) {
	req := require.New(t)

	// Given two connections sharing a session
	coord := app.NewCoordinator(app.NewRegistry(), nopRelay{})
	coord.OnConnect("B")
	coord.OnConnect("A")
	coord.Register("A", "Hall")
	coord.JoinSession("B", "room-1")
	coord.JoinSession("A", "room-1")
	r := newTestRouter(coord)

	// Then users come back sorted with their names
	w := get(r, "/api/users")
	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`{"users":[{"id":"A","name":"Hall"},{"id":"B","name":"Unknown (B)"}]}`, w.Body.String())

	// And the session lists its host and members
	w = get(r, "/api/sessions")
	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`{"sessions":[{"id":"room-1","host":"B","participants":["A","B"]}]}`, w.Body.String())

	w = get(r, "/api/sessions/room-1")
	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`{"id":"room-1","host":"B","participants":["A","B"]}`, w.Body.String())

	w = get(r, "/api/sessions/nope")
	req.Equal(http.StatusNotFound, w.Code)
}

func TestICEServersAndHealth(t *testing.T) {
	req := require.New(t)
	r := newTestRouter(app.NewCoordinator(app.NewRegistry(), nopRelay{}))

	w := get(r, "/api/ice-servers")
	req.Equal(http.StatusOK, w.Code)
	var body struct {
		ICEServers []map[string]any `json:"iceServers"`
	}
	req.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	req.Len(body.ICEServers, 1)
	req.Equal([]any{"stun:stun.example.org:3478"}, body.ICEServers[0]["urls"])

	w = get(r, "/healthz")
	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`{"status":"ok"}`, w.Body.String())
}
