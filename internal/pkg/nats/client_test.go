package nats

import (
	"errors"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
)

func TestNewClient_InvalidAddress(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1", "location-service-test")

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}

func TestNewConsumer_NilClient(t *testing.T) {
	consumer, err := NewConsumer(nil, "location.sample", "", func([]byte) error { return nil })

	assert.Error(t, err)
	assert.Nil(t, consumer)
}

func TestDispatch(t *testing.T) {
	var received []string
	handler := Dispatch("location.sample", func(data []byte) error {
		received = append(received, string(data))
		if string(data) == "bad" {
			return errors.New("decode failed")
		}
		return nil
	})

	handler(&nats.Msg{Subject: "location.sample", Data: []byte("ok")})
	handler(&nats.Msg{Subject: "location.sample", Data: []byte("bad")})

	assert.Equal(t, []string{"ok", "bad"}, received)
}

func TestClient_IsConnectedWithoutConn(t *testing.T) {
	c := &Client{}
	assert.False(t, c.IsConnected())
	c.Close()
}
