package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/usvmap/usvmap/internal/adapters/gazetteer"
	"github.com/usvmap/usvmap/internal/adapters/postgres"
	"github.com/usvmap/usvmap/internal/core/domain"
	"github.com/usvmap/usvmap/internal/core/ports"
	"github.com/usvmap/usvmap/internal/pkg/config"
)

var upFiles = []string{
	"migrations/001_country_anchors.sql",
}

var downFiles = []string{
	"migrations/001_country_anchors.down.sql",
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: migrate <up|down|seed|status [country]>")
	}

	cfg, err := config.Load("usvmap-migrate")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	db, err := postgres.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	switch os.Args[1] {
	case "up":
		runFiles(ctx, db, upFiles)
	case "down":
		runFiles(ctx, db, downFiles)
	case "seed":
		n, err := seed(ctx, postgres.NewAnchorRepo(db), gazetteer.New().Anchors())
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
		fmt.Printf("OK  %d country anchors\n", n)
	case "status":
		if err := status(ctx, postgres.NewAnchorRepo(db), os.Args[2:], os.Stdout); err != nil {
			log.Fatalf("status: %v", err)
		}
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}

func runFiles(ctx context.Context, db *postgres.DB, files []string) {
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			log.Fatalf("read %s: %v", f, err)
		}

		if _, err := db.Pool.Exec(ctx, string(data)); err != nil {
			log.Fatalf("exec %s: %v", f, err)
		}

		fmt.Printf("OK  %s\n", f)
	}

	log.Println("all migrations applied")
}

// seed copies the built-in gazetteer into country_anchors so the postgres
// provider starts from the same table and can then be edited in place.
func seed(ctx context.Context, repo ports.AnchorRepository, anchors []domain.GeoAnchor) (int, error) {
	if err := repo.UpsertBatch(ctx, anchors); err != nil {
		return 0, err
	}
	return len(anchors), nil
}

// status prints the stored anchors, or only the named countries.
func status(ctx context.Context, repo ports.AnchorRepository, countries []string, w io.Writer) error {
	var anchors []domain.GeoAnchor
	if len(countries) == 0 {
		all, err := repo.List(ctx)
		if err != nil {
			return err
		}
		anchors = all
	} else {
		for _, name := range countries {
			a, err := repo.GetByCountry(ctx, name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			anchors = append(anchors, *a)
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Country", "Latitude", "Longitude", "Source"})
	table.SetAutoWrapText(false)
	for _, a := range anchors {
		table.Append([]string{
			a.Country,
			strconv.FormatFloat(a.Point.Lat, 'f', 4, 64),
			strconv.FormatFloat(a.Point.Lon, 'f', 4, 64),
			a.Source,
		})
	}
	table.Render()
	fmt.Fprintf(w, "%d country anchors\n", len(anchors))
	return nil
}
