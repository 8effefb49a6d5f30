package session

import "net/http"

// hookWriter wraps http.ResponseWriter so session persistence can run right
// before the first header write. Set-Cookie must be on the wire before any
// body bytes, and the backing record must be saved before the client can see
// the cookie that references it.
type hookWriter struct {
	http.ResponseWriter
	before  func() error
	onError func(error)
	status  int
	written bool
	failed  bool
}

func newHookWriter(w http.ResponseWriter, before func() error, onError func(error)) *hookWriter {
	return &hookWriter{
		ResponseWriter: w,
		before:         before,
		onError:        onError,
	}
}

func (w *hookWriter) WriteHeader(status int) {
	if w.written || w.failed {
		return
	}

	if err := w.before(); err != nil {
		w.failed = true
		w.onError(err)
		http.Error(w.ResponseWriter, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.status = status
	w.written = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *hookWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	if w.failed {
		// The error response already went out; tell the handler its body was
		// discarded so streaming loops can stop early.
		return 0, ErrResponseAborted
	}
	return w.ResponseWriter.Write(b)
}

// Written reports whether response headers have been sent.
func (w *hookWriter) Written() bool {
	return w.written
}

// Status returns the HTTP status code sent to the client.
func (w *hookWriter) Status() int {
	return w.status
}

// Flush implements http.Flusher when the underlying writer supports it.
func (w *hookWriter) Flush() {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
