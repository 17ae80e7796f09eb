package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/usvmap/usvmap/internal/core/domain"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringVar(&resolveCountry, "country", "", "only print vessels of this country (aliases accepted)")
	resolveCmd.Flags().BoolVar(&resolveAnchors, "anchors", false, "print the resolved anchors instead of the vessels")
}

var (
	resolveCountry string
	resolveAnchors bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the vessel file and print where every vessel is placed",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc, cleanup, err := newDatasetService(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		ds, err := svc.Current(cmd.Context())
		if err != nil {
			return err
		}

		if resolveAnchors {
			printAnchors(ds)
		} else {
			country := domain.ShowAll
			if !domain.IsShowAll(resolveCountry) {
				country = domain.NormalizeCountry(resolveCountry)
			}
			printVessels(ds.ByCountry(country))
		}

		fmt.Fprintf(os.Stderr, "%d placed, %d dropped, %d countries (%s)\n",
			len(ds.Placed), ds.Dropped, len(ds.Countries), ds.Encoding)
		return nil
	},
}

func printVessels(vessels []domain.PlacedVessel) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Row", "Name", "Manufacturer", "Country", "Length (m)", "Lat", "Lon"})
	table.SetAutoWrapText(false)
	for _, v := range vessels {
		length := ""
		if v.LengthM != nil {
			length = strconv.FormatFloat(*v.LengthM, 'f', -1, 64)
		}
		table.Append([]string{
			strconv.Itoa(v.Row),
			v.Name,
			v.Manufacturer,
			v.Country,
			length,
			formatCoord(v.Position.Lat),
			formatCoord(v.Position.Lon),
		})
	}
	table.Render()
}

func printAnchors(ds *domain.Dataset) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Country", "Source", "Lat", "Lon", "Vessels"})
	for _, country := range ds.Countries {
		a := ds.Anchors[country]
		table.Append([]string{
			country,
			a.Source,
			formatCoord(a.Point.Lat),
			formatCoord(a.Point.Lon),
			strconv.Itoa(len(ds.ByCountry(country))),
		})
	}
	table.Render()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
