package server

import (
	"log"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
)

// newErrorLog routes net/http's internal errors (TLS handshakes, broken
// connections) into the structured logger.
func newErrorLog(l *logger.Logger) *log.Logger {
	return log.New(l.With().Str("source", "net/http").Logger(), "", 0)
}
