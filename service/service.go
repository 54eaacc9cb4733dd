package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"hoteldesk/booking"
	"hoteldesk/cache"
	"hoteldesk/dashboard"
	"hoteldesk/entity"
	"hoteldesk/http"
	"hoteldesk/notification"
	"hoteldesk/pubsub"
	"hoteldesk/pubsub/bus"
	"hoteldesk/readmodel"
	"hoteldesk/scheduler"
	"hoteldesk/session"
	"hoteldesk/tracing"
)

// BookingsService is the external booking service contract the console
// consumes. The gateway client implements it; tests plug in a mock.
type BookingsService interface {
	FetchAll(ctx context.Context, sess session.Session) ([]entity.Booking, error)
	FetchActive(ctx context.Context, sess session.Session) ([]entity.Booking, error)
	FetchRecent(ctx context.Context, sess session.Session, limit int) ([]entity.Booking, error)
	UpdateStatus(ctx context.Context, sess session.Session, bookingID string, status entity.PaymentStatus) (entity.Booking, error)
	Delete(ctx context.Context, sess session.Session, bookingID string) error
	Revenue(ctx context.Context, sess session.Session, from, to time.Time) (decimal.Decimal, error)
}

// RoomsService is the external room service contract.
type RoomsService interface {
	List(ctx context.Context, sess session.Session) ([]entity.HotelRoom, error)
	Stats(ctx context.Context, sess session.Session) ([]entity.RoomStat, error)
}

type Config struct {
	Addr              string
	DashboardInterval time.Duration
	CalendarInterval  time.Duration
	Templates         notification.Templates
}

type Service struct {
	router     *message.Router
	httpServer *http.Server

	calendarTask  *scheduler.Task
	dashboardTask *scheduler.Task
}

func New(
	cfg Config,
	sess session.Session,
	bookingsService BookingsService,
	roomsService RoomsService,
	rendererService notification.Renderer,
	mailService notification.Mailer,
) (*Service, error) {
	watermillLogger := pubsub.NewLogrusAdapter(logrus.NewEntry(logrus.StandardLogger()))

	goCh := pubsub.NewGoChannel(watermillLogger)

	var publisher message.Publisher = goCh
	publisher = tracing.PublisherDecorator{Publisher: publisher}

	eventBus, err := bus.NewEventBus(publisher)
	if err != nil {
		return nil, fmt.Errorf("failed to create event bus: %w", err)
	}

	activityFeed := readmodel.NewActivityFeed()

	router, err := pubsub.NewRouter(goCh, activityFeed, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	bookingsCache := cache.NewBookings()
	transitions := booking.NewTransitions(bookingsService, bookingsCache, eventBus)
	pipeline := notification.NewPipeline(rendererService, mailService, eventBus, cfg.Templates)
	dashboardBuilder := dashboard.NewBuilder(bookingsService, roomsService, sess)
	refresher := scheduler.NewRefresher("calendar", bookingsService, bookingsCache, eventBus, sess)

	calendarTask := scheduler.NewTask("calendar-refresh", cfg.CalendarInterval, refresher.Refresh)
	dashboardTask := scheduler.NewTask("dashboard-refresh", cfg.DashboardInterval, dashboardBuilder.Rebuild)

	httpServer := http.NewServer(
		cfg.Addr,
		sess,
		bookingsCache,
		transitions,
		pipeline,
		dashboardBuilder,
		activityFeed,
		refresher,
	)

	return &Service{
		router:        router,
		httpServer:    httpServer,
		calendarTask:  calendarTask,
		dashboardTask: dashboardTask,
	}, nil
}

func (s *Service) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.router.Run(ctx)
	})

	g.Go(func() error {
		// the schedulers publish events, so the router must be consuming
		// before the first refresh fires
		<-s.router.Running()

		s.calendarTask.Start(ctx)
		s.dashboardTask.Start(ctx)

		<-ctx.Done()
		s.calendarTask.Stop()
		s.dashboardTask.Stop()
		return nil
	})

	g.Go(func() error {
		<-s.router.Running()
		return s.httpServer.Run(ctx)
	})

	return g.Wait()
}
