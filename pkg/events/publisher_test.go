package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingProducer struct {
	topics []string
	keys   []string
	values [][]byte
	err    error
}

func (p *recordingProducer) SendMessage(_ context.Context, topic string, key []byte, value []byte) error {
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	p.keys = append(p.keys, string(key))
	p.values = append(p.values, value)
	return nil
}

func (p *recordingProducer) Close() error { return nil }

func TestPublisherPublish(t *testing.T) {
	prod := &recordingProducer{}
	pub := NewPublisher(prod, zap.NewNop())

	err := pub.Publish(context.Background(), TopicListings, Event{
		Type:     ListingReserved,
		EntityID: "food-1",
		ActorID:  "user-1",
	})
	require.NoError(t, err)

	require.Len(t, prod.values, 1)
	assert.Equal(t, TopicListings, prod.topics[0])
	assert.Equal(t, "food-1", prod.keys[0])

	var got Event
	require.NoError(t, json.Unmarshal(prod.values[0], &got))
	assert.Equal(t, ListingReserved, got.Type)
	assert.Equal(t, "user-1", got.ActorID)
	assert.False(t, got.OccurredAt.IsZero())
}

func TestPublisherProducerError(t *testing.T) {
	pub := NewPublisher(&recordingProducer{err: errors.New("broker down")}, zap.NewNop())
	err := pub.Publish(context.Background(), TopicListings, Event{Type: ListingCreated, EntityID: "x"})
	assert.EqualError(t, err, "broker down")
}

func TestNilPublisherIsNoop(t *testing.T) {
	var pub *Publisher
	assert.NoError(t, pub.Publish(context.Background(), TopicListings, Event{}))
	assert.NoError(t, pub.Close())
}

func TestLogProducerHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewLogProducer(zap.NewNop()).SendMessage(ctx, "t", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
