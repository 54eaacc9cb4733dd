// Package pubsub wires the console's internal event bus. The console is a
// single process, so events flow over watermill's in-memory Go channel
// Pub/Sub instead of an external broker; the presentation layer subscribes
// to them through the activity feed read model.
package pubsub

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// NewGoChannel returns the shared in-process Pub/Sub. Subscribers must be
// running before events are published; the service starts the router before
// the schedulers and the HTTP server for that reason.
func NewGoChannel(logger watermill.LoggerAdapter) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, logger)
}
