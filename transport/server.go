// Package transport exposes a read-only live view of a sheet over
// websockets: connect, receive a snapshot, then receive a fresh
// snapshot after every command the REPL processes. There is no
// update_cell message accepted from clients — this is strictly an
// observation channel, never a second writer.
package transport

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"sheet/engine"
	"sheet/grid"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// CellSnapshot is one cell's externally visible state.
type CellSnapshot struct {
	Name   string `json:"name"`
	Value  int32  `json:"value"`
	Status string `json:"status"`
}

// GridUpdate is broadcast to every connected viewer after each
// processed command.
type GridUpdate struct {
	Type    string         `json:"type"`
	Status  string         `json:"status"`
	Cells   []CellSnapshot `json:"cells"`
}

// Server fans out sheet state to websocket viewers.
type Server struct {
	sheet   *engine.Sheet
	logger  *log.Logger
	clients map[*websocket.Conn]bool
	mu      sync.Mutex
}

// NewServer wraps an existing sheet for read-only broadcast.
func NewServer(sheet *engine.Sheet, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{sheet: sheet, logger: logger, clients: make(map[*websocket.Conn]bool)}
}

// HandleWebSocket upgrades the connection, sends the current grid,
// then just waits for the client to disconnect — this is a read-only
// viewport, so any inbound message is discarded.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("transport: upgrade failed: %v", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	if err := conn.WriteJSON(s.snapshot("ok")); err != nil {
		s.logger.Printf("transport: initial write failed: %v", err)
		return
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast pushes a snapshot of every non-empty cell to every
// connected viewer. Called by
// the REPL loop's command hook, not by the sheet itself — the sheet
// has no notion of transport.
func (s *Server) Broadcast(status string) {
	update := s.snapshot(status)
	s.mu.Lock()
	defer s.mu.Unlock()
	for client := range s.clients {
		if err := client.WriteJSON(update); err != nil {
			s.logger.Printf("transport: broadcast failed: %v", err)
			_ = client.Close()
			delete(s.clients, client)
		}
	}
}

func (s *Server) snapshot(status string) GridUpdate {
	g := s.sheet.Grid
	cells := make([]CellSnapshot, 0, g.Rows*g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := g.At(r, c)
			if !cell.HasFormula && cell.Value == 0 {
				continue
			}
			statusName := "OK"
			if cell.Status == grid.ERROR {
				statusName = "ERROR"
			}
			cells = append(cells, CellSnapshot{
				Name:   grid.CoordsToName(r, c),
				Value:  cell.Value,
				Status: statusName,
			})
		}
	}
	return GridUpdate{Type: "grid_update", Status: status, Cells: cells}
}

// Start serves the websocket endpoint at addr until the process exits
// or ListenAndServe fails.
func (s *Server) Start(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.HandleWebSocket)
	s.logger.Printf("transport: serving read-only viewport at ws://%s/ws", addr)
	return http.ListenAndServe(addr, mux)
}
