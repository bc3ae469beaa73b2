package main

import (
	"context"
	"flag"
	"log"
	"slices"
	"strings"

	"github.com/joho/godotenv"

	"github.com/osse101/BabyEggBot_Go/internal/bootstrap"
	"github.com/osse101/BabyEggBot_Go/internal/config"
	"github.com/osse101/BabyEggBot_Go/internal/domain"
)

var allStores = []string{
	domain.StoreEggs,
	domain.StoreMarriages,
	domain.StoreLastClaim,
	domain.StoreCoins,
	domain.StoreInventory,
}

func main() {
	only := flag.String("stores", strings.Join(allStores, ","), "comma separated stores to empty")
	yes := flag.Bool("yes", false, "confirm the reset")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(true)
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	var targets []string
	for _, name := range strings.Split(*only, ",") {
		name = strings.TrimSpace(name)
		if !slices.Contains(allStores, name) {
			log.Fatalf("Unknown store %q (known: %s)", name, strings.Join(allStores, ", "))
		}
		targets = append(targets, name)
	}

	if !*yes {
		log.Printf("Would empty %s on the %s backend. Re-run with -yes to confirm.\n", strings.Join(targets, ", "), cfg.StorageDriver)
		return
	}

	ctx := context.Background()
	backend, err := bootstrap.OpenBackend(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer backend.Close()

	for _, name := range targets {
		log.Printf("Emptying store %s...\n", name)
		if err := backend.Save(ctx, name, []byte("{}")); err != nil {
			log.Fatalf("Failed to reset %s: %v", name, err)
		}
	}

	log.Println("\n✅ Reset complete!")
}
