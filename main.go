package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"hoteldesk/gateway"
	"hoteldesk/notification"
	"hoteldesk/service"
	"hoteldesk/session"
	"hoteldesk/tracing"
)

type opts struct {
	Addr string `long:"addr" env:"ADDR" default:":8080" description:"HTTP listen address"`

	BookingsAPIURL string `long:"bookings-api-url" env:"BOOKINGS_API_URL" required:"true" description:"base URL of the booking service"`
	RoomsAPIURL    string `long:"rooms-api-url" env:"ROOMS_API_URL" required:"true" description:"base URL of the room service"`
	RendererURL    string `long:"renderer-url" env:"RENDERER_URL" required:"true" description:"base URL of the PDF renderer"`

	MailAPIURL        string `long:"mail-api-url" env:"MAIL_API_URL" required:"true" description:"base URL of the mail service"`
	MailServiceID     string `long:"mail-service-id" env:"MAIL_SERVICE_ID" required:"true"`
	MailPublicKey     string `long:"mail-public-key" env:"MAIL_PUBLIC_KEY" required:"true"`
	GuestTemplateID   string `long:"guest-template-id" env:"GUEST_TEMPLATE_ID" required:"true"`
	AdminTemplateID   string `long:"admin-template-id" env:"ADMIN_TEMPLATE_ID" required:"true"`

	Token          string `long:"token" env:"API_TOKEN" required:"true" description:"bearer token for the booking service"`
	AdminFirstName string `long:"admin-first-name" env:"ADMIN_FIRST_NAME"`
	AdminLastName  string `long:"admin-last-name" env:"ADMIN_LAST_NAME"`
	AdminEmail     string `long:"admin-email" env:"ADMIN_EMAIL"`
	HotelName      string `long:"hotel-name" env:"HOTEL_NAME"`

	DashboardInterval time.Duration `long:"dashboard-interval" env:"DASHBOARD_INTERVAL" default:"30s"`
	CalendarInterval  time.Duration `long:"calendar-interval" env:"CALENDAR_INTERVAL" default:"5m"`

	JaegerEndpoint string `long:"jaeger-endpoint" env:"JAEGER_ENDPOINT" default:"http://localhost:14268/api/traces"`
}

func main() {
	ctx := context.Background()
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	var o opts
	if _, err := flags.Parse(&o); err != nil {
		os.Exit(1)
	}

	tp, err := tracing.ConfigureTraceProvider(o.JaegerEndpoint)
	if err != nil {
		panic(err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shut down trace provider")
		}
	}()

	sess := session.New(o.Token, session.AdminProfile{
		FirstName: o.AdminFirstName,
		LastName:  o.AdminLastName,
		Email:     o.AdminEmail,
		HotelName: o.HotelName,
	})

	bookingsClient := gateway.NewBookingsClient(o.BookingsAPIURL)
	roomsClient := gateway.NewRoomsClient(o.RoomsAPIURL)
	rendererClient := gateway.NewRendererClient(o.RendererURL)
	mailClient := gateway.NewMailClient(o.MailAPIURL, o.MailServiceID, o.MailPublicKey)

	svc, err := service.New(
		service.Config{
			Addr:              o.Addr,
			DashboardInterval: o.DashboardInterval,
			CalendarInterval:  o.CalendarInterval,
			Templates: notification.Templates{
				Guest: o.GuestTemplateID,
				Admin: o.AdminTemplateID,
			},
		},
		sess,
		bookingsClient,
		roomsClient,
		rendererClient,
		mailClient,
	)
	if err != nil {
		panic(err)
	}

	if err := svc.Run(ctx); err != nil {
		panic(err)
	}
}
