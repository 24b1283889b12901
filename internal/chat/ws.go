package chat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // same-origin enforcement happens at the proxy
	},
}

type WSIncoming struct {
	Type       string `json:"type"` // "chat" or "category"
	Text       string `json:"text,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
}

type WSResponse struct {
	Type      string `json:"type"` // "connected", "turn" or "error"
	SessionID string `json:"session_id,omitempty"`
	Turn      *Turn  `json:"turn,omitempty"`
	Text      string `json:"text,omitempty"`
}

// HandleWebSocket runs a chat session over a single socket. Each incoming
// frame is one submission; the assistant turn comes back as a "turn" frame.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	if _, err := h.svc.Session(id); err != nil {
		writeServiceError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(WSResponse{Type: "connected", SessionID: id.String()}); err != nil {
		log.Printf("Failed to send connected message: %v", err)
		return
	}

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket closed unexpectedly: %v", err)
			}
			return
		}

		var incoming WSIncoming
		if err := json.Unmarshal(message, &incoming); err != nil {
			conn.WriteJSON(WSResponse{
				Type: "error",
				Text: "Invalid message format. Send JSON with a 'type' field.",
			})
			continue
		}

		var turn Turn
		switch incoming.Type {
		case "category":
			turn, err = h.svc.SelectCategory(r.Context(), id, incoming.CategoryID)
		default:
			if incoming.Text == "" {
				continue
			}
			turn, err = h.svc.Submit(r.Context(), id, incoming.Text)
		}
		if err != nil {
			conn.WriteJSON(WSResponse{Type: "error", Text: err.Error()})
			if errors.Is(err, ErrSessionNotFound) {
				return
			}
			continue
		}

		if err := conn.WriteJSON(WSResponse{Type: "turn", Turn: &turn}); err != nil {
			log.Printf("Failed to write to WebSocket: %v", err)
			return
		}
	}
}
