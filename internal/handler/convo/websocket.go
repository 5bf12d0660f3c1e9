package convo

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type wsReply struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"reply"`
	Timestamp int64  `json:"timestamp"`
}

// handleWebSocket serves an interactive chat connection. Each connection owns
// exactly one session; each inbound text frame is one turn. Turns within the
// connection are processed sequentially by the read loop, so ordering matches
// the turn-synchronous model.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	session, err := h.convoSvc.CreateSession(r.Context())
	if err != nil {
		log.Printf("[ws] create session failed: %v", err)
		return
	}
	log.Printf("[ws] connection opened, session=%s", session.ID)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[ws] read failed for session=%s: %v", session.ID, err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		text := strings.TrimSpace(string(data))
		if text == "" {
			continue
		}

		reply, err := h.convoSvc.HandleMessage(r.Context(), session.ID, text)
		if err != nil {
			log.Printf("[ws] turn failed for session=%s: %v", session.ID, err)
			return
		}

		if err := conn.WriteJSON(wsReply{
			SessionID: session.ID,
			Reply:     reply,
			Timestamp: time.Now().Unix(),
		}); err != nil {
			log.Printf("[ws] write failed for session=%s: %v", session.ID, err)
			return
		}
	}
}
