// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package history keeps an append-only, chronological record of completed
// operations. The log lives in memory for the lifetime of the process, is
// owned by the caller, and is handed by reference into every operation
// that records an entry.
package history

import (
	"sync"
	"time"
)

// 📜 Entry is one immutable, human-readable record of a completed
// operation.
type Entry struct {
	At     time.Time // When the operation completed
	Action string    // What happened, in plain words
}

// 📚 Log is the append-only operation log. Appends are serialized so the
// chronological order holds even if a caller introduces concurrency.
type Log struct {
	mu      sync.Mutex
	entries []Entry
}

// 🏭 NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// 📝 Append records an action at the current time.
func (l *Log) Append(action string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{At: time.Now(), Action: action})
}

// 📖 Entries returns a copy of the log in chronological order.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// 🔢 Len returns the number of recorded entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
