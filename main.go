package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"forum-directory/auth"
	"forum-directory/config"
	"forum-directory/db"
	"forum-directory/handlers"
	"forum-directory/importer"
	"forum-directory/logging"
	"forum-directory/metrics"
	"forum-directory/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	catalog := models.NewCatalog(cfg.Unions, cfg.DefaultUnion)
	directory := db.NewDirectory(catalog)
	ids := db.NewIDSequence()

	if cfg.Seed {
		checkAndSeedData(directory, ids)
	}

	sessions, err := newSessionStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize import session store", "error", err)
		os.Exit(1)
	}

	gate, err := newGate(cfg)
	if err != nil {
		slog.Error("Failed to initialize admin gate", "error", err)
		os.Exit(1)
	}
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	apiHandler := handlers.NewAPIHandler(
		directory,
		ids,
		sessions,
		gate,
		tokens,
		metrics.New(directory.Len),
	)
	router := handlers.NewRouter(apiHandler)

	slog.Info("Starting server",
		"addr", cfg.Addr,
		"unions", len(catalog.Names()),
		"default_union", catalog.Default(),
		"session_store", cfg.SessionStore,
	)
	if err := router.Run(cfg.Addr); err != nil {
		slog.Error("Failed to run server", "error", err)
		os.Exit(1)
	}
}

func newSessionStore(cfg *config.Config) (importer.SessionStore, error) {
	if cfg.SessionStore != config.SessionStoreRedis {
		return importer.NewMemorySessionStore(), nil
	}
	client, err := db.InitializeRedisClient(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, err
	}
	return db.NewRedisSessionStore(client, cfg.SessionTTL), nil
}

func newGate(cfg *config.Config) (*auth.Gate, error) {
	if cfg.AdminPasswordHash != "" {
		return auth.NewGateFromHash(cfg.AdminPasswordHash)
	}
	return auth.NewGate(cfg.AdminPassword)
}

// checkAndSeedData adds demo records when the directory starts empty.
func checkAndSeedData(directory *db.Directory, ids *db.IDSequence) {
	if n := directory.Len(); n > 0 {
		slog.Info("Directory already has records, skipping seed data", "count", n)
		return
	}
	slog.Info("Directory is empty, adding initial seed data")
	seedInitialData(directory, ids)
}

// seedInitialData adds a small demo roster spread over the first unions of
// the catalog.
func seedInitialData(directory *db.Directory, ids *db.IDSequence) {
	unions := directory.Groups()
	if len(unions) == 0 {
		slog.Warn("Union catalog is empty, no seed data added")
		return
	}
	union := func(i int) string { return unions[i%len(unions)] }

	seed := []models.Person{
		{Name: "Karim Uddin", Union: union(0), Department: "CSE", Session: "2019-20", Mobile: "01711000001", VillageWard: "Ward 1", Gender: models.Male},
		{Name: "Rahima Akter", Union: union(0), Department: "Economics", Session: "2020-21", Mobile: "01711000002", VillageWard: "Ward 4", Gender: models.Female},
		{Name: "Abdur Rahim", Union: union(1), Department: "Physics", Session: "2018-19", Mobile: "01711000003", VillageWard: "Char Mojid", Gender: models.Male},
		{Name: "Nusrat Jahan", Union: union(2), Department: "English", Session: "2021-22", Mobile: "01711000004", VillageWard: "Musapur Bazar", Gender: models.Female},
		{Name: "Tanvir Hasan", Union: union(3), Department: "Marketing", Session: "2019-20", Mobile: "01711000005", VillageWard: "Ward 7", Gender: models.Male},
	}
	for i := range seed {
		seed[i].ID = ids.Next()
	}

	if err := directory.AddBatch(seed); err != nil {
		slog.Error("Error adding seed data", "error", err)
		return
	}
	slog.Info("Initial seed data added", "count", len(seed))
}
