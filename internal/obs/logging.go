// Package obs contains observability utilities such as logging.
package obs

import (
	"log/slog"
	"os"
)

// Logger is the global structured logger shared by the server and the
// console binaries.
var Logger *slog.Logger

// InitLogger initializes the global Logger with a JSON handler at info
// level. The server logs to stdout; the console passes toStderr so log
// lines do not interleave with its rendered output.
func InitLogger(toStderr bool) {
	out := os.Stdout
	if toStderr {
		out = os.Stderr
	}
	h := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo})
	Logger = slog.New(h)
}
