package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Broadcasts run on other connections' goroutines, so enqueue must stay
// safe on a client that has already been torn down (kick, full buffer).

func TestEnqueueAfterShutdown(t *testing.T) {
	c := newClient(nil, nil)
	c.shutdown()

	assert.NotPanics(t, func() {
		c.enqueue(encodeFrame(MsgError, map[string]string{"message": "late"}))
	})
	assert.NotPanics(t, c.shutdown, "shutdown is idempotent")
}

func TestEnqueueFullBufferMarksClientDead(t *testing.T) {
	c := newClient(nil, nil)
	msg := encodeFrame(MsgGameStateUpdate, map[string]string{})
	for i := 0; i < sendBuffer; i++ {
		c.enqueue(msg)
	}

	// The buffer is full: the next frame writes the client off instead of
	// blocking the broadcaster.
	assert.NotPanics(t, func() { c.enqueue(msg) })
	select {
	case <-c.done:
	default:
		t.Fatal("client with a saturated buffer was not marked dead")
	}

	// Later broadcasts to the dead client are dropped, never a panic.
	assert.NotPanics(t, func() { c.enqueue(msg) })
}

func TestEnqueueNilFrame(t *testing.T) {
	c := newClient(nil, nil)
	c.enqueue(nil)
	select {
	case <-c.send:
		t.Fatal("nil frame must not be queued")
	default:
	}
}
