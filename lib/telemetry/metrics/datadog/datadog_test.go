package datadog

import (
	"net"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSampleRate(t *testing.T) {
	assert.Equal(t, float64(DefaultSampleRate), getSampleRate("foo"))
	assert.Equal(t, float64(DefaultSampleRate), getSampleRate(1.25))
	assert.Equal(t, float64(1), getSampleRate(1))
	assert.Equal(t, 0.33, getSampleRate(0.33))
	assert.Equal(t, float64(DefaultSampleRate), getSampleRate(0))
	assert.Equal(t, float64(DefaultSampleRate), getSampleRate(-0.55))
}

func TestGetTags(t *testing.T) {
	assert.Equal(t, []string{}, getTags(nil))
	assert.Equal(t, []string{}, getTags([]string{}))
	assert.Equal(t, []string{"env:bar", "a:b"}, getTags([]any{"env:bar", "a:b"}))
	assert.Equal(t, []string{}, getTags(map[string]any{"env": "bar"}))
}

func TestToDatadogTags(t *testing.T) {
	assert.Empty(t, toDatadogTags(nil))
	assert.Equal(t, []string{"strategy:bulk_copy", "table:Trades"}, toDatadogTags(map[string]string{"table": "Trades", "strategy": "bulk_copy"}))
}

func TestNewDatadogClient(t *testing.T) {
	client, err := NewDatadogClient(map[string]any{
		Tags:      []string{"env:production"},
		Namespace: "sync.",
		Sampling:  0.255,
	})
	assert.NoError(t, err)

	mtr, ok := client.(*statsClient)
	assert.True(t, ok)
	assert.Equal(t, 0.255, mtr.rate)

	clientValue := reflect.ValueOf(mtr.client).Elem()
	assert.Equal(t, "sync.", clientValue.FieldByName("namespace").String())
	tagsField := clientValue.FieldByName("tags")
	assert.Equal(t, 1, tagsField.Len())
	assert.Equal(t, "env:production", tagsField.Index(0).String())
}

func TestStatsClient_Close(t *testing.T) {
	t.Setenv("TELEMETRY_HOST", "")
	t.Setenv("TELEMETRY_PORT", "")

	listener, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	client, err := NewDatadogClient(map[string]any{DatadogAddr: listener.LocalAddr().String()})
	require.NoError(t, err)

	client.Count("sync.batch.rows", 7, map[string]string{"table": "Trades"})
	client.Timing("sync.run.duration", 1500*time.Millisecond, map[string]string{"what": "success"})
	assert.NoError(t, client.Close())

	var received strings.Builder
	buf := make([]byte, 65535)
	require.NoError(t, listener.SetReadDeadline(time.Now().Add(2*time.Second)))
	for !strings.Contains(received.String(), "tablesync.sync.batch.rows:7|c") || !strings.Contains(received.String(), "tablesync.sync.run.duration:") {
		n, _, err := listener.ReadFrom(buf)
		require.NoError(t, err, "payload so far: %q", received.String())
		received.Write(buf[:n])
	}

	assert.Contains(t, received.String(), "table:Trades")
	assert.Contains(t, received.String(), "what:success")
}
