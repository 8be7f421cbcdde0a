package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	attendance "timbrapp.com/timbrapp/attendance/core"
	"timbrapp.com/timbrapp/attendance/auth"
	"timbrapp.com/timbrapp/attendance/store"
	"timbrapp.com/timbrapp/config"
	"timbrapp.com/timbrapp/core"
	"timbrapp.com/timbrapp/security"
	"timbrapp.com/timbrapp/web/handlers"
	"timbrapp.com/timbrapp/web/middlewares"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	logger := config.NewLogger(cfg.LogFile)
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal(err)
	}

	dm, err := core.New(cfg.DSN, 10, core.LogLevelWarn)
	if err != nil {
		logger.Fatal(err)
	}
	defer dm.Close()

	recordStore := store.NewGormStore(dm.DB)
	tracker := attendance.NewTracker(recordStore)
	authService := auth.NewService(recordStore)

	h := &handlers.Handler{
		Store:   recordStore,
		Tracker: tracker,
		Auth:    authService,
		Secret:  []byte(cfg.SigningSecret),
		Loc:     loc,
		Cfg:     cfg,
		Log:     logger,
	}

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	api.POST("/auth/employee/login", h.EmployeeLogin)
	api.POST("/auth/admin/login", h.AdminLogin)

	timeouts := middlewares.Timeouts{
		Employee: cfg.EmployeeSessionTimeout,
		Admin:    cfg.AdminSessionTimeout,
	}

	me := api.Group("/me")
	me.Use(middlewares.Authentication(h.Secret, timeouts), middlewares.RequireRole(security.RoleEmployee))
	{
		me.GET("/status", h.MyStatus)
		me.POST("/clock-in", h.ClockIn)
		me.POST("/clock-out", h.ClockOut)
		me.GET("/entries", h.MyEntries)
	}

	admin := api.Group("/admin")
	admin.Use(middlewares.Authentication(h.Secret, timeouts), middlewares.RequireRole(security.RoleAdmin))
	{
		admin.GET("/employees", h.ListEmployees)
		admin.POST("/employees", h.CreateEmployee)
		admin.PUT("/employees/:id", h.UpdateEmployee)
		admin.DELETE("/employees/:id", h.DeleteEmployee)

		admin.POST("/entries", h.CreateEntry)
		admin.PUT("/entries/:id", h.UpdateEntry)
		admin.DELETE("/entries/:id", h.DeleteEntry)

		admin.POST("/reports/search", h.SearchReport)
		admin.GET("/reports/export", h.ExportReport)

		admin.PUT("/password", h.ChangeAdminPassword)
	}

	logger.Infow("starting server", "listen", cfg.Listen, "timezone", cfg.Timezone)
	if err := r.Run(cfg.Listen); err != nil && err != http.ErrServerClosed {
		logger.Fatal(err)
	}
}
