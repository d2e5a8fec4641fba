package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	nuts "github.com/vaudience/go-nuts"
)

// accessLog forwards Apache combined log lines to the process logger
type accessLog struct{}

func (accessLog) Write(p []byte) (int, error) {
	nuts.L.Infof("[Access] %s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// recoveryLog satisfies handlers.RecoveryHandlerLogger
type recoveryLog struct{}

func (recoveryLog) Println(v ...interface{}) {
	nuts.L.Errorf("[Recovery] %s", strings.TrimRight(fmt.Sprintln(v...), "\n"))
}

// Wrap applies the outer middleware stack: access logging, gzip and panic
// recovery. Forwarded-for headers rewrite the client address only when
// trustProxy is set; otherwise the socket peer is kept.
func Wrap(next http.Handler, trustProxy bool) http.Handler {
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLog{}),
		handlers.PrintRecoveryStack(true),
	)
	h := handlers.CombinedLoggingHandler(accessLog{},
		handlers.CompressHandler(
			recovery(next),
		),
	)
	if trustProxy {
		return handlers.ProxyHeaders(h)
	}
	return h
}
