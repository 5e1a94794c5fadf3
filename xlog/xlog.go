// Package xlog is a thin wrapper over zerolog exposing exactly the
// three log "kinds" the tablet dispatch core's error-handling design
// recognizes: an informational drop, an internal-bug drop, and an
// unexpected-input error. It exists so call sites read as intent
// (xlog.Bug(...)) instead of open-coding zerolog fields everywhere,
// mirroring log_info/log_bug_libinput/log_error from the reference
// implementation.
package xlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().
	Timestamp().
	Logger()

// SetOutput redirects subsequent log output to w, replacing the
// default stderr console writer. Intended for tests and for backends
// that want structured (non-console) output.
func SetOutput(w io.Writer) {
	logger = zerolog.New(w).With().Timestamp().Logger()
}

// Info logs an unrecognized-but-benign input: an unknown absolute,
// key, or misc code. The event is dropped; no error is returned to the
// dispatch core's caller.
func Info(msg string, kv ...any) {
	emit(logger.Info(), msg, kv)
}

// Bug logs a condition that indicates a dispatch-core invariant was
// violated (e.g. an axis present in changed_axes that the notification
// path doesn't know how to read back) rather than a bad input. The
// event is still dropped, but the severity says "this is our fault."
func Bug(msg string, kv ...any) {
	emit(logger.Error().Bool("bug", true), msg, kv)
}

// Error logs an unexpected event type the classifier has no case for.
func Error(msg string, kv ...any) {
	emit(logger.Error(), msg, kv)
}

// emit attaches kv as alternating key/value pairs to ev and sends msg.
// A trailing key without a value is logged as-is under "extra".
func emit(ev *zerolog.Event, msg string, kv []any) {
	var i int

	for i = 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}

		ev = ev.Interface(key, kv[i+1])
	}

	if len(kv)%2 == 1 {
		ev = ev.Interface("extra", kv[len(kv)-1])
	}

	ev.Msg(msg)
}
