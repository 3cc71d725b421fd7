// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package budget

import (
	"fmt"
	"io"
	"sync"
)

var (
	logMu   sync.Mutex
	logSink io.Writer = io.Discard
)

// SetLogSink routes package diagnostics to w. The default sink
// discards everything; a CLI typically passes os.Stderr when verbose
// output is requested. Pass nil to silence again.
func SetLogSink(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	if w == nil {
		w = io.Discard
	}
	logSink = w
}

// logf writes one diagnostic line to the active sink.
func logf(format string, args ...any) {
	logMu.Lock()
	defer logMu.Unlock()
	fmt.Fprintf(logSink, "satchel: "+format+"\n", args...)
}
