package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	natsadapter "github.com/usvmap/usvmap/internal/adapters/nats"
	"github.com/usvmap/usvmap/internal/core/domain"
	"github.com/usvmap/usvmap/internal/core/ports"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print dataset versions as the API server builds them",
	Long: `Subscribes to the dataset stream. The latest stored version is printed
first, then one line per rebuild until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		sub, err := natsadapter.NewSubscriber(cfg.NATS.URL)
		if err != nil {
			return err
		}
		defer sub.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := follow(ctx, sub, cmd.OutOrStdout()); err != nil {
			return err
		}
		<-ctx.Done()
		return nil
	},
}

// follow prints one line per dataset version delivered by sub.
func follow(ctx context.Context, sub ports.EventSubscriber, w io.Writer) error {
	err := sub.SubscribeDatasetLoaded(ctx, func(_ context.Context, s domain.DatasetSummary) error {
		_, err := fmt.Fprintln(w, formatSummary(s))
		return err
	})
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	return nil
}

func formatSummary(s domain.DatasetSummary) string {
	return fmt.Sprintf("%s  %s  placed=%d dropped=%d countries=%d encoding=%s",
		s.LoadedAt.Local().Format(time.DateTime), s.Source.Path, s.Placed, s.Dropped, s.Countries, s.Encoding)
}
