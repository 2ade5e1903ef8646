// This file is part of GopherKart.
//
// GopherKart is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherKart is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherKart.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// only allowing one central log for the entire application. there's no need
// to allow more than one log
var central *Logger

// maximum number of entries in the central logger
const maxCentral = 256

func init() {
	central = NewLogger(maxCentral)
}

// Log adds an entry to the central logger
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from central logger
func Clear() {
	central.Clear()
}

// Write contents of central logger to io.Writer
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the last N entries of the central logger to io.Writer
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho forwards every new central log entry to the supplied zap logger
func SetEcho(echo *zap.Logger) {
	central.SetEcho(echo)
}

// BorrowLog gives the provided function the critical section and access to
// the central list of log entries
func BorrowLog(f func([]Entry)) {
	central.BorrowLog(f)
}

// NewEcho builds the zap logger used to echo the central log to the
// terminal. level selects verbosity: 0 and 1 for errors only, 2 for info, 3
// for debug. the production flag selects the JSON encoder intended for log
// collection rather than for reading at a terminal
func NewEcho(level int, production bool) (*zap.Logger, error) {
	var zapConfig zap.Config

	if production {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Encoding = "console"
	}

	switch level {
	case 0, 1:
		zapConfig.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	case 2:
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case 3:
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	default:
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	echo, err := zapConfig.Build()
	if err != nil {
		return nil, errors.Wrap(err, "logger")
	}

	return echo, nil
}
