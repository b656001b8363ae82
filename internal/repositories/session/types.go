package session

import gamesession "github.com/KirkDiggler/hakem/internal/session"

type SaveSessionInput struct {
	Session *gamesession.Session
}

type GetSessionInput struct {
	SessionID string
}

type DeleteSessionInput struct {
	SessionID string
}
