package viewer

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"elemex/internal/details"
	"elemex/internal/selection"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clickEvent is the incoming WebSocket message format. "element_click"
// (grid) and "select" (picklist) carry the chosen element's atomic number
// and are handled identically.
type clickEvent struct {
	Type   string `json:"type"` // "element_click" or "select"
	Number int    `json:"number"`
}

// selectionUpdate is the outgoing WebSocket message format.
type selectionUpdate struct {
	Type      string        `json:"type"` // "selection" or "error"
	SessionID string        `json:"session_id"`
	Number    int           `json:"number,omitempty"`
	Details   *details.View `json:"details,omitempty"`
	PhotoURL  string        `json:"photo_url,omitempty"`
	Message   string        `json:"message,omitempty"`
}

// handleEvents runs one viewer session. The selection state is owned by
// this handler: receive event, validate, update, re-render, reply,
// fully synchronous from the session's perspective.
func (v *Viewer) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("viewer: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	ds := v.loader.Load(r.Context())
	sessionID := uuid.NewString()
	state := selection.New(v.initialSelection, ds.Contains)

	// Render the configured initial selection so the details panel is
	// populated before the first click.
	if current, ok := state.Current(); ok {
		v.sendSelection(conn, sessionID, current)
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("viewer: websocket read: %v", err)
			}
			return
		}

		var ev clickEvent
		if err := json.Unmarshal(msg, &ev); err != nil {
			v.sendError(conn, sessionID, "invalid message format")
			continue
		}

		switch ev.Type {
		case "element_click", "select":
			// Unknown ids and re-selects are no-ops: no state change,
			// no re-render message.
			if state.Select(ev.Number) {
				v.sendSelection(conn, sessionID, ev.Number)
			}
		default:
			v.sendError(conn, sessionID, "unknown message type: "+ev.Type)
		}
	}
}

func (v *Viewer) sendSelection(conn *websocket.Conn, sessionID string, number int) {
	ds := v.loader.Load(context.Background())
	view := details.Render(number, ds)
	update := selectionUpdate{
		Type:      "selection",
		SessionID: sessionID,
		Number:    number,
		Details:   &view,
		PhotoURL:  v.photoURLFor(ds, number),
	}
	if err := conn.WriteJSON(update); err != nil {
		log.Printf("viewer: websocket write: %v", err)
	}
}

func (v *Viewer) sendError(conn *websocket.Conn, sessionID, message string) {
	update := selectionUpdate{
		Type:      "error",
		SessionID: sessionID,
		Message:   message,
	}
	if err := conn.WriteJSON(update); err != nil {
		log.Printf("viewer: websocket write error: %v", err)
	}
}
