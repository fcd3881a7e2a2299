package transport

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/datagen/pkg/service"
)

func TestNewServer_Defaults(t *testing.T) {
	s := NewServer(service.New(service.Options{}), Config{})
	assert.Equal(t, ":9091", s.Address())

	custom := NewServer(service.New(service.Options{}), Config{Address: "127.0.0.1:0"})
	assert.Equal(t, "127.0.0.1:0", custom.Address())
}

func TestServer_StopBeforeStart(t *testing.T) {
	s := NewServer(service.New(service.Options{}), Config{})
	assert.NoError(t, s.Stop(context.Background()))
	assert.NoError(t, s.StopWithTimeout())

	select {
	case <-s.Ready():
		t.Fatal("server reported ready without Start")
	default:
	}
}

func TestServer_StartAndStop(t *testing.T) {
	const addr = "127.0.0.1:19091"
	s := NewServer(service.New(service.Options{}), Config{Address: addr})

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	// Ready must not fire before the listener accepts connections.
	select {
	case <-s.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("server did not become ready")
	}

	conn, err := net.DialTimeout("tcp", addr, time.Second)
	require.NoError(t, err)
	conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not exit after Stop")
	}
}
