package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/usvmap/usvmap/internal/adapters/memory"
	"github.com/usvmap/usvmap/internal/core/domain"
	"github.com/usvmap/usvmap/internal/core/usecases"
)

func init() {
	rootCmd.AddCommand(viewCmd)
}

var viewCmd = &cobra.Command{
	Use:   "view [event...]",
	Short: "Replay viewport interactions and print the viewport after each one",
	Long: `Replays a sequence of interactions against one session, starting from
the initial render. Events:

  render             re-render without interaction
  select=<country>   pick a country in the selector ("select=Show All" clears it)
  zoom-all           zoom out to every vessel for one render
  clear              clear the filter and zoom out`,
	Example: `  usvctl view select=UK zoom-all render clear`,
	RunE: func(cmd *cobra.Command, args []string) error {
		events := make([]domain.ViewEvent, 0, len(args)+1)
		events = append(events, domain.ViewEvent{Kind: domain.EventRender})
		for _, arg := range args {
			ev, err := parseEvent(arg)
			if err != nil {
				return err
			}
			events = append(events, ev)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		datasets, cleanup, err := newDatasetService(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		views, err := usecases.NewViewService(datasets, memory.NewSessionStore(1, time.Hour), cfg.Viewport.Layout())
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Step", "Event", "Filter", "Mode", "Zoom", "Center", "Vessels"})
		for i, ev := range events {
			view, err := views.Apply(cmd.Context(), "usvctl", ev)
			if err != nil {
				return fmt.Errorf("step %d (%s): %w", i, describeEvent(ev), err)
			}
			st := view.State
			table.Append([]string{
				strconv.Itoa(i),
				describeEvent(ev),
				st.Country,
				string(st.Mode),
				strconv.FormatFloat(st.Zoom, 'f', -1, 64),
				formatCoord(st.Center.Lat) + ", " + formatCoord(st.Center.Lon),
				strconv.Itoa(len(view.Vessels)),
			})
		}
		table.Render()
		return nil
	},
}

// parseEvent reads one command-line event.
func parseEvent(arg string) (domain.ViewEvent, error) {
	name, value, hasValue := strings.Cut(arg, "=")
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "render":
		return domain.ViewEvent{Kind: domain.EventRender}, nil
	case "select", "select_country":
		if !hasValue {
			return domain.ViewEvent{}, fmt.Errorf("select needs a country, e.g. select=France")
		}
		return domain.ViewEvent{Kind: domain.EventSelectCountry, Country: value}, nil
	case "zoom-all", "zoom_to_all":
		return domain.ViewEvent{Kind: domain.EventZoomToAll}, nil
	case "clear", "clear_filter":
		return domain.ViewEvent{Kind: domain.EventClearFilter}, nil
	default:
		return domain.ViewEvent{}, fmt.Errorf("unknown event %q", arg)
	}
}

func describeEvent(ev domain.ViewEvent) string {
	if ev.Kind == domain.EventSelectCountry {
		return fmt.Sprintf("%s(%s)", ev.Kind, ev.Country)
	}
	return string(ev.Kind)
}
