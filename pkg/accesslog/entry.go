package accesslog

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/ker0olos/sift/utils"
	"github.com/rs/zerolog"
)

type Entry struct {
	Username string
	Latency  time.Duration
	ClientIP string
	Request  Request
	Response Response

	// Rejection is the kind of validation failure, empty for accepted requests.
	Rejection string
}

type Request struct {
	Method  string
	Path    string
	Proto   string
	Headers map[string]string
}

type Response struct {
	Status int
	Size   int
}

func NewEntry(r *http.Request) *Entry {
	username, _, _ := r.BasicAuth()
	entry := Entry{
		Username: username,
		ClientIP: remoteHost(r.RemoteAddr),
		Request: Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Proto:  r.Proto,
			Headers: map[string]string{
				"user-agent": r.UserAgent(),
				"referer":    r.Referer(),
			},
		},
	}
	return &entry
}

func (m *Entry) MarshalZerologObject(e *zerolog.Event) {
	e.Str("client_ip", m.ClientIP)
	e.Str("username", m.Username)
	e.Dict("request", zerolog.Dict().
		Str("method", m.Request.Method).
		Str("path", m.Request.Path).
		Str("proto", m.Request.Proto).
		Dict("headers", zerolog.Dict().
			Str("user-agent", m.Request.Headers["user-agent"]).
			Str("referer", m.Request.Headers["referer"])),
	)
	e.Dict("response",
		zerolog.Dict().
			Int("status", m.Response.Status).
			Int("size", m.Response.Size),
	)
	e.Int64("latency", m.Latency.Milliseconds())
	if m.Rejection != "" {
		e.Str("rejection", m.Rejection)
	}
}

// String renders the entry in a combined-log-like line, followed by the
// rejection kind when there is one.
func (m *Entry) String() string {
	line := fmt.Sprintf(`%s - %s "%s %s %s" %d %d %dms "%s" "%s"`,
		m.ClientIP,
		utils.DefaultIfZero(m.Username, "-"),
		m.Request.Method,
		m.Request.Path,
		m.Request.Proto,
		m.Response.Status,
		m.Response.Size,
		m.Latency.Milliseconds(),
		utils.DefaultIfZero(m.Request.Headers["referer"], "-"),
		utils.DefaultIfZero(m.Request.Headers["user-agent"], "-"),
	)
	if m.Rejection != "" {
		line += " rejection=" + m.Rejection
	}
	return line
}

func remoteHost(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
