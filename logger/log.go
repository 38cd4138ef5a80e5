// This file is part of gochip8.
//
// gochip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gochip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gochip8.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	tag       string
	detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// detailString renders a logged detail value. Errors and fmt.Stringers are
// unwrapped through their own formatting; everything else falls back to the
// %v verb.
func detailString(detail interface{}) string {
	switch d := detail.(type) {
	case string:
		return d
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	default:
		return fmt.Sprintf("%v", d)
	}
}

// Logger is a bounded, repeat-collapsing log. The zero value is not usable;
// construct one with NewLogger. The package also maintains a single central
// Logger, reachable through the package-level functions, for code that just
// wants to log without carrying a reference around.
type Logger struct {
	maxEntries int
	entries    []Entry
	echo       io.Writer
	echoRecent bool

	// timestamp of the most recently logged entry, for WriteRecent's
	// change-detection.
	atomicTimestamp atomic.Value // time.Time
	recentMark      atomic.Value // time.Time
}

// NewLogger constructs a Logger that retains at most maxEntries, discarding
// the oldest first.
func NewLogger(maxEntries int) *Logger {
	l := &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0),
	}
	l.atomicTimestamp.Store(time.Time{})
	l.recentMark.Store(time.Time{})
	return l
}

// Log adds an entry if perm allows it. detail may be a string, an error, a
// fmt.Stringer, or anything else formattable with %v.
func (l *Logger) Log(perm Permission, tag string, detail interface{}) {
	if perm == Allow || perm.AllowLogging() {
		l.log(tag, detailString(detail))
	}
}

// Logf adds a formatted entry if perm allows it.
func (l *Logger) Logf(perm Permission, tag, format string, args ...interface{}) {
	if perm == Allow || perm.AllowLogging() {
		l.log(tag, fmt.Sprintf(format, args...))
	}
}

func (l *Logger) log(tag, detail string) {
	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	if e == nil || detail != e.detail || tag != e.tag {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), tag: tag, detail: detail})
		e = &l.entries[len(l.entries)-1]
	} else {
		e.repeated++
		e.Timestamp = time.Now()
	}

	l.atomicTimestamp.Store(e.Timestamp)

	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

// Clear removes all entries.
func (l *Logger) Clear() {
	l.entries = l.entries[:0]
}

// Write writes every entry to output.
func (l *Logger) Write(output io.Writer) {
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
}

// WriteRecent writes only the entries added since the last call to
// WriteRecent.
func (l *Logger) WriteRecent(output io.Writer) {
	mark := l.recentMark.Load().(time.Time)
	wrote := false
	for _, e := range l.entries {
		if e.Timestamp.After(mark) {
			io.WriteString(output, e.String())
			wrote = true
		}
	}
	if wrote {
		l.recentMark.Store(l.atomicTimestamp.Load().(time.Time))
	}
}

// Tail writes the last number entries to output.
func (l *Logger) Tail(output io.Writer, number int) {
	if number > len(l.entries) {
		number = len(l.entries)
	}
	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho causes every new entry to also be written to output immediately.
// Pass a nil output to disable echoing.
func (l *Logger) SetEcho(output io.Writer, writeRecent bool) {
	l.echo = output
	if output != nil && writeRecent {
		l.WriteRecent(output)
	}
}

// BorrowLog gives f direct access to the entry list, for callers that want
// read access without copying. No lock is taken.
func (l *Logger) BorrowLog(f func([]Entry)) {
	f(l.entries)
}

// maximum number of entries in the central logger.
const maxCentral = 256

// central is the package-level default Logger. Most of the codebase logs
// through it rather than carrying a *Logger reference.
var central = NewLogger(maxCentral)

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail interface{}) { central.Log(perm, tag, detail) }

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag, format string, args ...interface{}) {
	central.Logf(perm, tag, format, args...)
}

// Clear removes all entries from the central logger.
func Clear() { central.Clear() }

// Write writes the central logger's entries to output.
func Write(output io.Writer) { central.Write(output) }

// WriteRecent writes the central logger's entries added since the last call.
func WriteRecent(output io.Writer) { central.WriteRecent(output) }

// Tail writes the central logger's last number entries to output.
func Tail(output io.Writer, number int) { central.Tail(output, number) }

// SetEcho causes the central logger to echo new entries to output.
func SetEcho(output io.Writer, writeRecent bool) { central.SetEcho(output, writeRecent) }

// BorrowLog gives f access to the central logger's entries.
func BorrowLog(f func([]Entry)) { central.BorrowLog(f) }
