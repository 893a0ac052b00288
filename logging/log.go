// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package logging provides the elapsed-time-stamped logger used by the
// CLI entrypoint and the concurrent driver to report skipped rows and
// events and scratch-directory cleanup failures.
package logging

import (
	"fmt"
	"log"
	"time"
)

// Log wraps the standard logger, stamping every line with the time
// elapsed since the run started.
type Log struct {
	start  time.Time
	logger *log.Logger
}

// New creates a logger whose elapsed-time clock starts now.
func New() *Log {
	return &Log{start: time.Now(), logger: log.Default()}
}

// Print logs msg prefixed with the elapsed run time.
func (l *Log) Print(msg string) {
	t := uint64(time.Since(l.start).Seconds())
	l.logger.Printf("[t=%4d:%02d] %s", t/60, t%60, msg)
}

// Printf formats and logs a message prefixed with the elapsed run time.
func (l *Log) Printf(format string, v ...any) {
	l.Print(fmt.Sprintf(format, v...))
}
