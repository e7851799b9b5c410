package game

// SessionState carries everything that outlives a single word
type SessionState struct {
	PlayerName     string
	Score          int
	FailedWords    int
	MaxFailedWords int
	WordsSolved    int
}

func NewSessionState(maxFailedWords int) *SessionState {
	return &SessionState{MaxFailedWords: maxFailedWords}
}

func (s *SessionState) RecordCorrect(reward int) {
	s.Score += reward
	s.WordsSolved++
}

// RecordFailure counts an exhausted word and reports whether the session is over
func (s *SessionState) RecordFailure() bool {
	s.FailedWords++
	return s.IsOver()
}

func (s *SessionState) IsOver() bool {
	return s.FailedWords >= s.MaxFailedWords
}

// Reset clears the session for a new player; the limit is configuration and stays
func (s *SessionState) Reset() {
	*s = SessionState{MaxFailedWords: s.MaxFailedWords}
}
