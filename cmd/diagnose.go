package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"technopedia-registration/internal/config"
	"technopedia-registration/internal/infrastructure/cache"
	"technopedia-registration/internal/infrastructure/database"
	"technopedia-registration/internal/infrastructure/repository"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Check the backing services",
	Long: `Run connectivity and schema checks against the configured
database and cache, and report each result. Exits non-zero if any
check fails.`,
	Run: func(cmd *cobra.Command, args []string) {
		runDiagnose()
	},
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)
}

type checkResult struct {
	name string
	err  error
}

func runDiagnose() {
	cfg := config.Get()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var mu sync.Mutex
	var results []checkResult
	record := func(name string, err error) {
		mu.Lock()
		results = append(results, checkResult{name: name, err: err})
		mu.Unlock()
	}

	record("configuration", cfg.Validate())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		db, err := database.NewConnection(database.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.Username,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.Name,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			record("database connection", err)
			record("registrations table", fmt.Errorf("skipped"))
			record("game_registrations table", fmt.Errorf("skipped"))
			record("payments table", fmt.Errorf("skipped"))
			record("duplicate check probe", fmt.Errorf("skipped"))
			return nil
		}
		record("database connection", database.HealthCheck(db))

		registrantRepo := repository.NewRegistrantRepository(db)
		_, err = registrantRepo.Count(gctx)
		record("registrations table", err)

		entryRepo := repository.NewGameEntryRepository(db)
		_, err = entryRepo.Count(gctx)
		record("game_registrations table", err)

		attemptRepo := repository.NewPaymentAttemptRepository(db)
		_, err = attemptRepo.SuccessfulRevenue(gctx)
		record("payments table", err)

		// Exercises the duplicate-check path end to end; the probe
		// address is never registered.
		_, err = registrantRepo.ExistsByEmail(gctx, "probe@diagnose.invalid")
		record("duplicate check probe", err)
		return nil
	})
	g.Go(func() error {
		cacheService := cache.NewRedisCacheWithConfig(&cfg.Cache)
		record("redis connection", cacheService.Ping(gctx))
		return nil
	})
	_ = g.Wait()

	failed := 0
	for _, result := range results {
		if result.err != nil {
			failed++
			fmt.Printf("❌ %s: %v\n", result.name, result.err)
		} else {
			fmt.Printf("✅ %s\n", result.name)
		}
	}

	if failed > 0 {
		fmt.Printf("\n%d of %d checks failed\n", failed, len(results))
		os.Exit(1)
	}
	fmt.Printf("\nAll %d checks passed\n", len(results))
}
