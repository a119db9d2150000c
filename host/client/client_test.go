package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhoneMk/treasure-hunt/host/link"
	"github.com/PhoneMk/treasure-hunt/protocol"
)

// testClient wires a client to one end of a loopback and hands the
// test the far end, which plays the pad.
func testClient(t *testing.T) (*Client, *link.Loopback, <-chan byte, <-chan string) {
	t.Helper()

	near, far := link.NewLoopback()
	events := make(chan byte, 16)
	lines := make(chan string, 16)

	c := New(near,
		func(ev byte) { events <- ev },
		func(line string) { lines <- line },
	)
	t.Cleanup(func() { c.Close() })

	return c, far, events, lines
}

func waitByte(t *testing.T, ch <-chan byte) byte {
	t.Helper()
	select {
	case b := <-ch:
		return b
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return 0
	}
}

func waitLine(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for line")
		return ""
	}
}

func TestEventsReachCallback(t *testing.T) {
	_, far, events, _ := testClient(t)

	_, err := far.Write([]byte("U\r\nB\r\n"))
	require.NoError(t, err)

	assert.Equal(t, byte(protocol.EventUp), waitByte(t, events))
	assert.Equal(t, byte(protocol.EventButton), waitByte(t, events))
}

func TestEchoLinesReachCallback(t *testing.T) {
	_, far, _, lines := testClient(t)

	_, err := far.Write([]byte("F:42\n"))
	require.NoError(t, err)

	assert.Equal(t, "F:42", waitLine(t, lines))
}

func TestInterleavedEchoAndEvent(t *testing.T) {
	_, far, events, lines := testClient(t)

	_, err := far.Write([]byte("S:Ready\nR\r\n"))
	require.NoError(t, err)

	assert.Equal(t, "S:Ready", waitLine(t, lines))
	assert.Equal(t, byte(protocol.EventRight), waitByte(t, events))
}

func TestSendFood(t *testing.T) {
	c, far, _, _ := testClient(t)

	errCh := make(chan error, 1)
	go func() { errCh <- c.SendFood(42) }()

	buf := make([]byte, 16)
	n, err := far.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "F:42\n", string(buf[:n]))
	require.NoError(t, <-errCh)
}

func TestSendEnergy(t *testing.T) {
	c, far, _, _ := testClient(t)

	errCh := make(chan error, 1)
	go func() { errCh <- c.SendEnergy(-5) }()

	buf := make([]byte, 16)
	n, err := far.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "E:-5\n", string(buf[:n]))
	require.NoError(t, <-errCh)
}

func TestSendStatus(t *testing.T) {
	c, far, _, _ := testClient(t)

	errCh := make(chan error, 1)
	go func() { errCh <- c.SendStatus("On the hunt") }()

	buf := make([]byte, 32)
	n, err := far.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "S:On the hunt\n", string(buf[:n]))
	require.NoError(t, <-errCh)
}

func TestSendRawTerminates(t *testing.T) {
	c, far, _, _ := testClient(t)

	errCh := make(chan error, 1)
	go func() { errCh <- c.SendRaw("X:junk") }()

	buf := make([]byte, 16)
	n, err := far.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "X:junk\n", string(buf[:n]))
	require.NoError(t, <-errCh)
}

func TestFarCloseStopsReader(t *testing.T) {
	c, far, _, _ := testClient(t)

	require.NoError(t, far.Close())

	select {
	case <-c.Done():
	case <-time.After(time.Second):
		t.Fatal("reader did not stop after the link closed")
	}
}

func TestScanPadLines(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		atEOF bool
		adv   int
		token string
	}{
		{"lf line", "F:42\nrest", false, 5, "F:42"},
		{"cr line", "U\r\n", false, 2, "U"},
		{"bare terminator", "\n", false, 1, ""},
		{"incomplete", "F:4", false, 0, ""},
		{"incomplete at eof", "F:4", true, 3, "F:4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adv, token, err := scanPadLines([]byte(tt.data), tt.atEOF)
			require.NoError(t, err)
			assert.Equal(t, tt.adv, adv)
			assert.Equal(t, tt.token, string(token))
		})
	}
}
