package main

import (
	"refman/api/contexts"
	gam "refman/api/middleware"
	"refman/api/models"
	serviceInfo "refman/api/models/constants/service-info"
	genomesMvc "refman/api/mvc/genomes"
	serviceInfoMvc "refman/api/mvc/service-info"
	registryService "refman/api/services/registry"
	"time"

	"fmt"
	"net/http"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tReference Data Root Path : %s \n"+
		"\tManifest Refresh Interval (minutes) : %d\n"+
		"\tInitial Scan Max Elapsed (seconds) : %d\n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Data.RootPath,
		cfg.Data.RefreshIntervalMinutes,
		cfg.Data.ScanMaxElapsedSeconds,
		cfg.Api.Port)
	// --

	// Instantiate Server
	e := echo.New()

	// Service Singletons
	rs := registryService.NewRegistryService(&cfg)

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET},
	}))

	// -- Override handlers with "custom Refman" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.RefmanContext{
				Context:         c,
				Config:          &cfg,
				RegistryService: rs,
			}
			return h(cc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		fmt.Printf("[%s] - Root hit!\n", time.Now())
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Genomes
	e.GET("/genomes", genomesMvc.GenomesGetAll)
	e.GET("/genomes/overview", genomesMvc.GetGenomesOverview)
	e.GET("/genomes/get/by/genomeId", genomesMvc.GenomesGetByGenomeId,
		// middleware
		gam.MandateGenomeIdAttribute)

	// -- Resources
	e.GET("/resources/resolve/by/resourceKey", genomesMvc.ResourcesResolveByResourceKey,
		// middleware
		gam.MandateGenomeIdAttribute,
		gam.MandateResourceKeyAttribute)
	e.GET("/resources/verify/by/genomeId", genomesMvc.ResourcesVerifyByGenomeId,
		// middleware
		gam.MandateGenomeIdAttribute)

	// -- Refresh
	e.GET("/genomes/refresh/run", genomesMvc.GenomesRefreshRun)
	e.GET("/genomes/refresh/requests", genomesMvc.GetAllGenomesRefreshRequests)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
