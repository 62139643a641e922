package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader is the request and response header carrying the trace id.
const traceIDHeader = "X-Trace-ID"

// withTraceID assigns a trace id to every request, reusing the caller's
// X-Trace-ID header when one is supplied and generating a UUID otherwise.
//
// The id is bound to a request-scoped child logger stored in the request
// context, so every log line produced while serving the request carries
// the same trace_id field. It is also echoed back in the response header,
// letting a client-reported id be matched against server logs.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
