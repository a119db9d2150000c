package sim

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/PhoneMk/treasure-hunt/core"
)

// tcpLink exposes the pad's serial link as a TCP listener so the real
// host tools can attach to a simulated pad. One host at a time, like
// one cable.
type tcpLink struct {
	listener net.Listener
	dash     *dashboard

	mu   sync.Mutex
	conn net.Conn
}

func newTCPLink(addr string, dash *dashboard) (*tcpLink, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return &tcpLink{listener: l, dash: dash}, nil
}

func (l *tcpLink) Addr() string {
	return l.listener.Addr().String()
}

// Write sends pad output to the attached host. With no host attached
// the bytes go nowhere, exactly like transmitting into an unplugged
// cable.
func (l *tcpLink) Write(p []byte) (int, error) {
	l.mu.Lock()
	conn := l.conn
	l.mu.Unlock()

	if conn == nil {
		return len(p), nil
	}

	conn.SetWriteDeadline(time.Now().Add(core.WriteTimeout))
	return conn.Write(p)
}

// serve accepts hosts one after another, feeding their bytes into the
// framer until each hangs up.
func (l *tcpLink) serve(ctrl *core.Controller) {
	for {
		conn, err := l.listener.Accept()
		if err != nil {
			return
		}

		l.attach(conn)
		l.dash.setLinked(true)

		l.read(conn, ctrl)

		l.attach(nil)
		l.dash.setLinked(false)
		conn.Close()
	}
}

func (l *tcpLink) attach(conn net.Conn) {
	l.mu.Lock()
	l.conn = conn
	l.mu.Unlock()
}

func (l *tcpLink) read(conn net.Conn, ctrl *core.Controller) {
	buf := make([]byte, 64)
	for {
		n, err := conn.Read(buf)
		for _, b := range buf[:n] {
			ctrl.RxByte(b)
		}
		if err != nil {
			return
		}
	}
}

func (l *tcpLink) close() {
	l.listener.Close()
}
