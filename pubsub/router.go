package pubsub

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"

	"hoteldesk/readmodel"
)

func NewRouter(
	subscriber message.Subscriber,
	activityFeed *readmodel.ActivityFeed,
	watermillLogger watermill.LoggerAdapter,
) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("could not create router: %w", err)
	}

	useMiddlewares(router, watermillLogger)

	eventProcessor, err := cqrs.NewEventProcessorWithConfig(router, cqrs.EventProcessorConfig{
		SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return subscriber, nil
		},
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			return "events." + params.EventName, nil
		},
		Marshaler: cqrs.JSONMarshaler{
			GenerateName: cqrs.StructName,
		},
		Logger: watermillLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create event processor: %w", err)
	}

	err = eventProcessor.AddHandlers(
		cqrs.NewEventHandler(
			"activity_feed.OnBookingsRefreshed",
			activityFeed.OnBookingsRefreshed,
		),
		cqrs.NewEventHandler(
			"activity_feed.OnBookingsRefreshFailed",
			activityFeed.OnBookingsRefreshFailed,
		),
		cqrs.NewEventHandler(
			"activity_feed.OnPaymentStatusUpdated",
			activityFeed.OnPaymentStatusUpdated,
		),
		cqrs.NewEventHandler(
			"activity_feed.OnBookingDeleted",
			activityFeed.OnBookingDeleted,
		),
		cqrs.NewEventHandler(
			"activity_feed.OnNotificationSent",
			activityFeed.OnNotificationSent,
		),
		cqrs.NewEventHandler(
			"activity_feed.OnNotificationFailed",
			activityFeed.OnNotificationFailed,
		),
		cqrs.NewEventHandler(
			"activity_feed.OnBulkSendCompleted",
			activityFeed.OnBulkSendCompleted,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("could not add handlers to event processor: %w", err)
	}

	return router, nil
}
