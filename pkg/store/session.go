package store

// ChatTurn is one message in a cached conversation window.
type ChatTurn struct {
	Role string `json:"role"` // "user" | "model"
	Text string `json:"text"`
}

// SessionState is the hot conversation window for an active chat session,
// kept in memory so each turn does not reload the full history from the
// database. The database stays the source of truth.
type SessionState struct {
	ID        string     `json:"id"` // ChatSessionID
	UserID    string     `json:"user_id"`
	History   []ChatTurn `json:"history"` // oldest first, bounded
	LastQuery string     `json:"last_query"`
}

// MaxHistoryTurns bounds the cached window; older turns are dropped.
const MaxHistoryTurns = 20

// Append adds a turn, trimming the window from the front when it overflows.
func (s *SessionState) Append(role, text string) {
	s.History = append(s.History, ChatTurn{Role: role, Text: text})
	if len(s.History) > MaxHistoryTurns {
		s.History = s.History[len(s.History)-MaxHistoryTurns:]
	}
}
