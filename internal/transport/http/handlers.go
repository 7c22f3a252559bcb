package http

import (
	"net/http"

	"github.com/dkeye/Intercom/internal/app"
	"github.com/dkeye/Intercom/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/pion/webrtc/v4"
)

// Snapshots serves read-only views of the coordinator state. Nothing here
// mutates a table; all changes go through the signal channel.
type Snapshots struct {
	Coord      *app.Coordinator
	ICEServers []webrtc.ICEServer
}

func (s Snapshots) Register(rg gin.IRoutes) {
	rg.GET("/users", s.handleUsers)
	rg.GET("/sessions", s.handleSessions)
	rg.GET("/sessions/:id", s.handleSession)
	rg.GET("/ice-servers", s.handleICEServers)
}

func (s Snapshots) handleUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": s.Coord.Registry.Snapshot()})
}

func (s Snapshots) handleSessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": s.Coord.Sessions()})
}

func (s Snapshots) handleSession(c *gin.Context) {
	info, ok := s.Coord.Session(domain.SessionID(c.Param("id")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, info)
}

func (s Snapshots) handleICEServers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"iceServers": s.ICEServers})
}

func HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
