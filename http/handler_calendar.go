package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"hoteldesk/calendar"
)

type calendarEventResponse struct {
	calendar.Event
	Color string `json:"color"`
}

type calendarResponse struct {
	CurrentDate time.Time               `json:"current_date"`
	CurrentView calendar.View           `json:"current_view"`
	Header      string                  `json:"header"`
	WeekRange   string                  `json:"week_range,omitempty"`
	Events      []calendarEventResponse `json:"events"`
}

func (s *Server) calendarResponse(nav calendar.Navigation) calendarResponse {
	response := calendarResponse{
		CurrentDate: nav.CurrentDate,
		CurrentView: nav.CurrentView,
		Header:      nav.Header(),
		Events: lo.Map(calendar.Project(s.cache.List()), func(e calendar.Event, _ int) calendarEventResponse {
			return calendarEventResponse{Event: e, Color: calendar.StatusColor(e.Status)}
		}),
	}
	if nav.CurrentView == calendar.ViewWeek {
		response.WeekRange = nav.WeekRange()
	}
	return response
}

func (s *Server) GetCalendar(c echo.Context) error {
	s.navMu.Lock()
	nav := s.nav
	s.navMu.Unlock()

	return c.JSON(http.StatusOK, s.calendarResponse(nav))
}

type navigateRequest struct {
	Action calendar.NavAction `json:"action"`
}

func (s *Server) PostCalendarNavigate(c echo.Context) error {
	var request navigateRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	switch request.Action {
	case calendar.NavPrevious, calendar.NavNext, calendar.NavToday:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown navigation action: "+string(request.Action))
	}

	s.navMu.Lock()
	s.nav = s.nav.Navigate(request.Action, time.Now())
	nav := s.nav
	s.navMu.Unlock()

	return c.JSON(http.StatusOK, s.calendarResponse(nav))
}

type viewRequest struct {
	View calendar.View `json:"view"`
}

func (s *Server) PostCalendarView(c echo.Context) error {
	var request viewRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	if !request.View.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown calendar view: "+string(request.View))
	}

	s.navMu.Lock()
	s.nav = s.nav.WithView(request.View)
	nav := s.nav
	s.navMu.Unlock()

	return c.JSON(http.StatusOK, s.calendarResponse(nav))
}
