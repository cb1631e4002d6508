/*
Package logging
File: logging.go
Description:
    zerolog setup for the server. The rules engine itself never logs; only
    main and the api layer do, through a logger built here.
*/

package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console logger at the named level. Unknown level names fall
// back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}
