package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivek-dahikar/AutoRegisterAgent/config"
)

type recordingBackend struct {
	channel string
	data    []byte
	attrs   map[string]string
	err     error
	closed  bool
}

func (b *recordingBackend) Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	b.channel, b.data, b.attrs = channel, data, attrs
	return "msg-1", nil
}

func (b *recordingBackend) Subscribe(ctx context.Context, channel string, handler Handler) error {
	return handler(ctx, Message{ID: "msg-1", Data: b.data, Attributes: b.attrs})
}

func (b *recordingBackend) Close() error {
	b.closed = true
	return nil
}

func TestMQ_PublishJSON(t *testing.T) {
	backend := &recordingBackend{}
	m := New(backend)

	id, err := m.PublishJSON(context.Background(), "auth-events", map[string]string{"type": "signup"}, map[string]string{"event_type": "signup"})
	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)
	assert.Equal(t, "auth-events", backend.channel)
	assert.JSONEq(t, `{"type":"signup"}`, string(backend.data))
	assert.Equal(t, "signup", backend.attrs["event_type"])

	var received Message
	require.NoError(t, m.Subscribe(context.Background(), "auth-events", func(ctx context.Context, msg Message) error {
		received = msg
		return nil
	}))
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(received.Data, &decoded))
	assert.Equal(t, "signup", decoded["type"])

	require.NoError(t, m.Close())
	assert.True(t, backend.closed)
}

func TestMQ_PublishJSON_MarshalError(t *testing.T) {
	m := New(&recordingBackend{})
	_, err := m.PublishJSON(context.Background(), "c", make(chan int), nil)
	assert.Error(t, err)
}

func TestMQ_PublishError(t *testing.T) {
	boom := errors.New("broker down")
	m := New(&recordingBackend{err: boom})
	_, err := m.Publish(context.Background(), "c", []byte("x"), nil)
	assert.ErrorIs(t, err, boom)
}

func TestOpen_NoneReturnsNil(t *testing.T) {
	m, err := Open(context.Background(), config.MQConfig{Backend: config.MQBackendNone})
	require.NoError(t, err)
	assert.Nil(t, m)

	m, err = Open(context.Background(), config.MQConfig{})
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), config.MQConfig{Backend: "kafka"})
	assert.Error(t, err)
}

func TestOpen_MissingSettings(t *testing.T) {
	_, err := Open(context.Background(), config.MQConfig{Backend: config.MQBackendRabbitMQ})
	assert.Error(t, err)

	_, err = Open(context.Background(), config.MQConfig{Backend: config.MQBackendPubSub})
	assert.Error(t, err)
}

func TestHeaderConversion(t *testing.T) {
	assert.Nil(t, attributesToHeaders(nil))
	assert.Nil(t, headersToAttributes(nil))

	headers := attributesToHeaders(map[string]string{"event_type": "login"})
	assert.Equal(t, amqp.Table{"event_type": "login"}, headers)

	attrs := headersToAttributes(amqp.Table{
		"s": "text",
		"b": []byte("bytes"),
		"n": int32(7),
	})
	assert.Equal(t, map[string]string{"s": "text", "b": "bytes", "n": "7"}, attrs)
}
