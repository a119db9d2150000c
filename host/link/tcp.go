package link

import (
	"fmt"
	"net"
	"time"
)

const dialTimeout = 3 * time.Second

// TCPPort connects to the desktop simulator's listening link
type TCPPort struct {
	conn net.Conn
}

// DialTCP connects to a simulator at addr (host:port)
func DialTCP(addr string) (Port, error) {
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to dial simulator %s: %w", addr, err)
	}
	return &TCPPort{conn: conn}, nil
}

// Read reads data from the connection
func (p *TCPPort) Read(b []byte) (int, error) {
	return p.conn.Read(b)
}

// Write writes data to the connection
func (p *TCPPort) Write(b []byte) (int, error) {
	return p.conn.Write(b)
}

// Close closes the connection
func (p *TCPPort) Close() error {
	return p.conn.Close()
}

// Flush is a no-op; there is no device buffer behind a socket
func (p *TCPPort) Flush() error {
	return nil
}
