package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"hoteldesk/booking"
	"hoteldesk/cache"
	"hoteldesk/calendar"
	"hoteldesk/dashboard"
	"hoteldesk/notification"
	"hoteldesk/readmodel"
	"hoteldesk/scheduler"
	"hoteldesk/session"
)

type Server struct {
	addr string
	e    *echo.Echo

	sess        session.Session
	cache       *cache.Bookings
	transitions *booking.Transitions
	pipeline    *notification.Pipeline
	dashboard   *dashboard.Builder
	activity    *readmodel.ActivityFeed
	refresher   *scheduler.Refresher

	navMu sync.Mutex
	nav   calendar.Navigation
}

func NewServer(
	addr string,
	sess session.Session,
	bookingsCache *cache.Bookings,
	transitions *booking.Transitions,
	pipeline *notification.Pipeline,
	dashboardBuilder *dashboard.Builder,
	activity *readmodel.ActivityFeed,
	refresher *scheduler.Refresher,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(otelecho.Middleware("hoteldesk"))

	server := &Server{
		addr:        addr,
		e:           e,
		sess:        sess,
		cache:       bookingsCache,
		transitions: transitions,
		pipeline:    pipeline,
		dashboard:   dashboardBuilder,
		activity:    activity,
		refresher:   refresher,
		nav:         calendar.NewNavigation(time.Now()),
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/bookings", server.GetBookings)
	e.PUT("/bookings/:id/status", server.PutBookingStatus)
	e.DELETE("/bookings/:id", server.DeleteBooking)
	e.POST("/bookings/:id/notifications", server.PostBookingNotification)
	e.POST("/notifications", server.PostBulkNotifications)

	e.GET("/calendar", server.GetCalendar)
	e.POST("/calendar/navigate", server.PostCalendarNavigate)
	e.POST("/calendar/view", server.PostCalendarView)

	e.GET("/dashboard", server.GetDashboard)
	e.GET("/activity", server.GetActivity)

	return server
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.e.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown HTTP server")
		}
	}()

	logrus.WithField("addr", s.addr).Info("[HTTP] server listening")
	if err := s.e.Start(s.addr); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
