package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/flaing/omingard/internal/bots"
	"github.com/flaing/omingard/internal/engine"
)

func generateSessionID() string {
	return time.Now().Format("20060102150405")
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Session owns the single game behind the WebSocket endpoint. One
// client message is handled to completion under the mutex before the
// next is read, matching the engine's synchronous model.
type Session struct {
	mu        sync.Mutex
	id        string
	game      *engine.Game
	conn      *websocket.Conn
	actionIds map[string]bool
	hinter    bots.Bot
	seed      int64
}

var (
	sessionOnce sync.Once
	sessionInst *Session
)

func GetSession() *Session {
	sessionOnce.Do(func() {
		sessionInst = &Session{
			id:        generateSessionID(),
			actionIds: map[string]bool{},
			hinter:    bots.NewGreedy(),
		}
	})
	return sessionInst
}

// SetDefaultSeed fixes the seed used when a start_game message carries
// none. Zero keeps time-derived seeds.
func (s *Session) SetDefaultSeed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seed = seed
}

func (s *Session) HandleConnection(conn *websocket.Conn) {
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("bad_request", "invalid json")
			continue
		}
		s.handleMessage(msg)
	}
}

type ClientMessage struct {
	Type     string     `json:"type"`
	ActionId string     `json:"actionId,omitempty"`
	Action   *ActionDTO `json:"action,omitempty"`
	Seed     int64      `json:"seed,omitempty"`
}

type ServerMessage struct {
	Type   string     `json:"type"`
	State  *TableView `json:"state,omitempty"`
	Events []Event    `json:"events,omitempty"`
	Hint   *ActionDTO `json:"hint,omitempty"`
	Error  *ErrorView `json:"error,omitempty"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

func (s *Session) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case "join_session", "request_state":
		s.sendState(nil)
	case "start_game":
		s.startGame(msg.Seed)
	case "player_action":
		s.applyAction(msg.ActionId, msg.Action)
	case "hint":
		s.sendHint()
	default:
		s.sendError("unknown_type", "unknown message type")
	}
}

func (s *Session) startGame(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seed == 0 {
		seed = s.seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.game = engine.NewGame(seed)
	s.actionIds = map[string]bool{}
	s.sendStateLocked(nil)
}

func (s *Session) applyAction(actionId string, dto *ActionDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game == nil {
		s.sendError("not_started", "game not started")
		return
	}
	if actionId == "" {
		s.sendError("missing_action_id", "actionId required")
		return
	}
	if s.actionIds[actionId] {
		s.sendStateLocked(nil)
		return
	}
	s.actionIds[actionId] = true

	action, err := dto.ToEngine()
	if err != nil {
		s.sendError("bad_action", err.Error())
		return
	}
	prev := s.game.Table()
	s.game.Apply(action)
	events := buildEvents(prev, s.game.Table(), action)
	s.sendStateLocked(events)
}

func (s *Session) sendHint() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game == nil {
		s.sendError("not_started", "game not started")
		return
	}
	action, ok := s.hinter.ChooseAction(s.game.Table())
	if !ok {
		s.sendError("no_hint", "no useful action available")
		return
	}
	if s.conn == nil {
		return
	}
	dto := ActionFromEngine(action)
	_ = s.conn.WriteJSON(ServerMessage{Type: "hint", Hint: &dto})
}

func (s *Session) sendState(events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendStateLocked(events)
}

func (s *Session) sendStateLocked(events []Event) {
	if s.conn == nil {
		return
	}
	if s.game == nil {
		s.game = engine.NewGame(time.Now().UnixNano())
	}
	msg := ServerMessage{
		Type:   "state",
		State:  BuildTableView(s.game, s.id),
		Events: events,
	}
	_ = s.conn.WriteJSON(msg)
}

func (s *Session) sendError(code, message string) {
	if s.conn == nil {
		return
	}
	msg := ServerMessage{
		Type:  "error",
		Error: &ErrorView{Code: code, Message: message},
	}
	_ = s.conn.WriteJSON(msg)
}
