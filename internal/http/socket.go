package httpapi

import (
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StateSocket streams state snapshots. The first frame is the current
// state; later frames follow every committed intent.
func (s *Server) StateSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.Hub.Add(conn, func() StateResponse { return buildState(s.App.Snapshot()) }); err != nil {
		_ = conn.Close()
		return
	}
	defer func() {
		s.Hub.Remove(conn)
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
