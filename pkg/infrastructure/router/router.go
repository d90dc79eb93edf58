package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/adapter/controller"
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/infrastructure/webhook"
)

// New creates route endpoint
func New(ctrl controller.Controller, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderXRequestedWith,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
		},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))

	e.GET("/health_check", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	h := webhook.New(ctrl)

	e.POST("/create_todo/", h.CreateTodo)
	e.POST("/get_todos/", h.GetTodos)
	e.POST("/complete_todo/", h.CompleteTodo)
	e.POST("/delete_todo/", h.DeleteTodo)
	e.POST("/add_reminder/", h.AddReminder)
	e.POST("/get_reminders/", h.GetReminders)
	e.POST("/delete_reminder/", h.DeleteReminder)
	e.POST("/add_calendar_entry/", h.AddCalendarEntry)
	e.POST("/get_calendar_entries/", h.GetCalendarEntries)
	e.POST("/delete_calendar_entry/", h.DeleteCalendarEntry)

	return e
}
