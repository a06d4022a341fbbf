package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"geohash-service/geohash"
)

var (
	encodeLat       float64
	encodeLon       float64
	encodePrecision float64
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a latitude/longitude into a geohash",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		if !flags.Changed("lat") || !flags.Changed("lon") {
			return geohash.ErrMissingCoordinate
		}
		v, err := geohash.NewFromCoordinates(encodeLat, encodeLon, encodePrecision)
		if err != nil {
			return err
		}
		hash, err := v.Hash()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <hash>",
	Short: "Decode a geohash into its center, precision and bounds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lat, lon, precision, err := geohash.DecodeCenter(args[0])
		if err != nil {
			return err
		}
		la, lo, err := geohash.DecodeInterval(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "latitude:  %v\n", lat)
		fmt.Fprintf(out, "longitude: %v\n", lon)
		fmt.Fprintf(out, "precision: %v km\n", precision)
		fmt.Fprintf(out, "bounds:    lat [%v, %v] lon [%v, %v]\n", la.Min, la.Max, lo.Min, lo.Max)
		return nil
	},
}

var neighborsCmd = &cobra.Command{
	Use:   "neighbors <hash>",
	Short: "List the 8 cells around a geohash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := geohash.NewFromHash(args[0])
		if err != nil {
			return err
		}
		cells, err := v.Neighbors()
		if err != nil {
			return err
		}
		for _, c := range cells {
			hash, err := c.Hash()
			if err != nil {
				return fmt.Errorf("neighbour of %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
		}
		return nil
	},
}

func init() {
	encodeCmd.Flags().Float64Var(&encodeLat, "lat", 0, "latitude in degrees")
	encodeCmd.Flags().Float64Var(&encodeLon, "lon", 0, "longitude in degrees")
	encodeCmd.Flags().Float64Var(&encodePrecision, "precision", geohash.DefaultPrecisionKm, "precision in km")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(neighborsCmd)
}
