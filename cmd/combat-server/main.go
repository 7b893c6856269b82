package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voidmarch/combat/internal/api"
	"github.com/voidmarch/combat/internal/combat"
	"github.com/voidmarch/combat/internal/config"
	"github.com/voidmarch/combat/internal/constants"
	"github.com/voidmarch/combat/internal/engine"
	"github.com/voidmarch/combat/internal/logging"
	"github.com/voidmarch/combat/internal/storage"
)

func main() {
	settings, err := config.Load(os.Getenv(constants.EnvConfigPath))
	if err != nil {
		logging.Fatal("invalid server configuration", err, nil)
	}
	logging.SetLevel(settings.LogLevel)

	catalog := engine.DefaultTechniques()
	if settings.CatalogPath != "" {
		catalog, err = config.LoadCatalog(settings.CatalogPath)
		if err != nil {
			logging.Fatal("invalid technique catalog", err, logging.Fields{"catalog_path": settings.CatalogPath})
		}
	}

	dbPath := settings.DatabasePath
	if p := os.Getenv(constants.EnvDBPath); p != "" {
		dbPath = p
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("failed to initialize database", err, logging.Fields{"db_path": dbPath})
	}
	repo := storage.NewSQLiteRepository(db)

	// One seedable generator per run keeps scenario replay deterministic
	// when a fixed seed is configured.
	seed := settings.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var rng combat.Source = rand.New(rand.NewSource(seed))

	handler := api.NewEncounterHandler(repo, rng, catalog, engine.DefaultVoidAbilities())

	router := gin.Default()
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.POST(constants.RouteEncounters, handler.CreateEncounter)
		apiRoutes.GET(constants.RouteEncounters, handler.ListEncounters)
		apiRoutes.GET(constants.RouteEncounterByUUID, handler.GetEncounter)
		apiRoutes.POST(constants.RouteEncounterActions, handler.SubmitAction)
		apiRoutes.POST(constants.RouteEncounterFlee, handler.Flee)
		apiRoutes.POST(constants.RouteEncounterTime, handler.AdvanceTime)
		apiRoutes.POST(constants.RouteEncounterVoid, handler.CastVoid)
	}

	logging.Info("starting combat server", logging.Fields{constants.LogFieldAddr: settings.ServerAddress})
	if err := router.Run(settings.ServerAddress); err != nil {
		logging.Fatal("server exited", err, nil)
	}
}
