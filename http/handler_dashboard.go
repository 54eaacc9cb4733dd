package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) GetDashboard(c echo.Context) error {
	snapshot, ok := s.dashboard.Current()
	if !ok {
		return echo.NewHTTPError(http.StatusServiceUnavailable,
			"Dashboard data not loaded yet. Try again shortly.")
	}
	return c.JSON(http.StatusOK, snapshot)
}

func (s *Server) GetActivity(c echo.Context) error {
	return c.JSON(http.StatusOK, s.activity.Recent())
}
