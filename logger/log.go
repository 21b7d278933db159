// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Level of a log entry. The level is never specified by the caller, it is
// inferred from the detail of the entry.
type Level int

// List of valid Level values.
const (
	Info Level = iota
	Error
)

func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Error:
		return "error"
	}
	return "unknown"
}

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	Level     Level
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Sink receives every new entry made in a Logger, including repeats. The host
// program of the addon provides a sink so that log entries appear in the
// host's own log.
type Sink interface {
	LogMessage(level Level, msg string)
}

// Logger is the central record of log entries.
type Logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	echo io.Writer
	sink Sink
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

// Log adds an entry to the log. The detail argument can be of any type but
// error and fmt.Stringer are treated specially: the Error() and String()
// functions are used to create the entry. An error value causes the entry to
// have the Error level.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}

	level := Info
	var s string

	switch d := detail.(type) {
	case error:
		level = Error
		s = d.Error()
	case fmt.Stringer:
		s = d.String()
	case string:
		s = d
	default:
		s = fmt.Sprintf("%v", d)
	}

	l.log(level, tag, s)
}

// Logf adds a formatted entry to the log. If any of the arguments are an error
// then the entry has the Error level.
func (l *Logger) Logf(perm Permission, tag string, pattern string, args ...any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}

	level := Info
	for _, a := range args {
		if _, ok := a.(error); ok {
			level = Error
			break
		}
	}

	l.log(level, tag, fmt.Sprintf(pattern, args...))
}

func (l *Logger) log(level Level, tag string, detail string) {
	l.crit.Lock()

	// remove all newline characters from tag and detail string
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	if e != nil && e.Detail == detail && e.Tag == tag && e.Level == level {
		e.repeated++
		e.Timestamp = time.Now()
	} else {
		l.entries = append(l.entries, Entry{
			Timestamp: time.Now(),
			Tag:       tag,
			Detail:    detail,
			Level:     level,
		})
		e = &l.entries[len(l.entries)-1]
	}

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
		e = &l.entries[len(l.entries)-1]
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}

	// the sink is called outside of the critical section so that it can
	// safely make use of the logger
	sink := l.sink
	l.crit.Unlock()

	if sink != nil {
		sink.LogMessage(level, fmt.Sprintf("%s: %s", tag, detail))
	}
}

// Clear all entries from the log.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

// Write the contents of the log to the io.Writer.
func (l *Logger) Write(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
}

// Tail writes the last N entries to the io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// cap number to the number of entries
	if number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho prints entries to io.Writer as they are added. If writeRecent is
// true then the current contents of the log are written first. A nil
// io.Writer stops echoing.
func (l *Logger) SetEcho(output io.Writer, writeRecent bool) {
	l.crit.Lock()
	defer l.crit.Unlock()

	l.echo = output
	if l.echo != nil && writeRecent {
		for _, e := range l.entries {
			io.WriteString(l.echo, e.String())
		}
	}
}

// SetSink forwards every new entry to the Sink. A nil Sink stops forwarding.
func (l *Logger) SetSink(sink Sink) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.sink = sink
}

// BorrowLog gives the provided function the critial section and access to the
// list of log entries.
func (l *Logger) BorrowLog(f func([]Entry)) {
	l.crit.Lock()
	defer l.crit.Unlock()
	f(l.entries)
}
