package pubsub

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"hoteldesk/metrics"
)

func useMiddlewares(router *message.Router, watermillLogger watermill.LoggerAdapter) {
	router.AddMiddleware(middleware.Recoverer)

	router.AddMiddleware(func(next message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			logger := logrus.WithFields(logrus.Fields{
				"message_id": msg.UUID,
				"topic":      message.SubscribeTopicFromCtx(msg.Context()),
				"handler":    message.HandlerNameFromCtx(msg.Context()),
			})

			logger.Debug("handling event")

			msgs, err := next(msg)
			if err != nil {
				logger.WithError(err).Error("error while handling event")
			}

			return msgs, err
		}
	})

	router.AddMiddleware(func(next message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			labels := prometheus.Labels{
				"topic":   message.SubscribeTopicFromCtx(msg.Context()),
				"handler": message.HandlerNameFromCtx(msg.Context()),
			}

			msgs, err := next(msg)
			if err != nil {
				metrics.EventsProcessingFailed.With(labels).Inc()
			}
			metrics.EventsProcessed.With(labels).Inc()

			return msgs, err
		}
	})
}
