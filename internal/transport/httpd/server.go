// Package httpd implements the raw request-line server: a single-client
// accept loop that hand-parses HTTP GET lines and feeds them to the command
// dispatcher.
package httpd

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/avolkhin/keydeck-server/internal/config"
	"github.com/avolkhin/keydeck-server/internal/core"
)

// Server accepts one connection at a time and runs the connection loop on
// it. A new connection is not accepted until the previous loop exits.
type Server struct {
	ln         net.Listener
	dispatcher *core.Dispatcher
	readWindow time.Duration
	maxLine    int
	log        *zerolog.Logger
}

// NewServer builds a server over the given dispatcher.
func NewServer(cfg config.Config, dispatcher *core.Dispatcher, logger *zerolog.Logger) *Server {
	return &Server{
		dispatcher: dispatcher,
		readWindow: cfg.ReadWindow,
		maxLine:    cfg.MaxLineBytes,
		log:        logger,
	}
}

// Listen binds the listener.
func (s *Server) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	s.ln = ln
	s.log.Info().Str("addr", ln.Addr().String()).Msg("listening")
	return nil
}

// Addr returns the bound listener address.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Serve accepts connections until the listener is closed. Connections are
// handled strictly sequentially.
func (s *Server) Serve() error {
	if s.ln == nil {
		return errors.New("serve called before listen")
	}
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		s.handleConn(conn)
	}
}

// Close closes the listener, unblocking Serve.
func (s *Server) Close() error {
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}

// handleConn runs one connection lifecycle: an absolute read deadline of
// accept-time plus the read window, a read-dispatch loop over completed
// lines, one page response on the empty line, then teardown. The line
// buffer is fresh per connection.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	session := uuid.NewString()
	s.log.Debug().
		Str("session", session).
		Str("remote", conn.RemoteAddr().String()).
		Msg("connection accepted")

	if err := conn.SetReadDeadline(time.Now().Add(s.readWindow)); err != nil {
		s.log.Warn().Err(err).Str("session", session).Msg("set read deadline")
		return
	}

	reader := NewLineReader(s.maxLine)
	br := bufio.NewReader(conn)

	for {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				s.log.Debug().Str("session", session).Msg("read window elapsed")
			} else {
				s.log.Debug().Err(err).Str("session", session).Msg("client disconnected")
			}
			return
		}

		line, complete := reader.Feed(b)
		if !complete {
			continue
		}
		if line != "" {
			s.dispatcher.Dispatch(session, line)
			continue
		}

		// Empty line ends the headers: respond once and stop reading.
		if err := writePage(conn); err != nil {
			s.log.Warn().Err(err).Str("session", session).Msg("write page")
			return
		}
		s.log.Debug().Str("session", session).Msg("page served")
		return
	}
}
