package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roomlayout",
		Short: "Deterministic footprint placement and strip packing for grid rooms",
	}

	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(placeCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(importDoorsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initCmd() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "init [scenario-path]",
		Short: "Write a starter scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInit(args[0], width, height)
		},
	}

	cmd.Flags().IntVar(&width, "width", 19, "room width in cells, walls included")
	cmd.Flags().IntVar(&height, "height", 19, "room height in cells, walls included")
	return cmd
}

func planCmd() *cobra.Command {
	var out exportPaths

	cmd := &cobra.Command{
		Use:   "plan [scenario-path]",
		Short: "Strip-pack the scenario's room and print the layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPlan(args[0], out)
		},
	}

	cmd.Flags().StringVar(&out.PDF, "pdf", "", "also write a floor-plan PDF to this path")
	cmd.Flags().StringVar(&out.DXF, "dxf", "", "also write a DXF drawing to this path")
	cmd.Flags().StringVar(&out.XLSX, "xlsx", "", "also write a placement schedule workbook to this path")
	cmd.Flags().StringVar(&out.Labels, "labels", "", "also write QR label sheets to this path")
	return cmd
}

func placeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place [scenario-path]",
		Short: "Place a single square footprint in the scenario's room",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPlace(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [scenario-path]",
		Short: "Validate a scenario and check its computed layout's invariants",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func importDoorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-doors [scenario-path] [schedule-path]",
		Short: "Merge doors from a CSV, Excel, or DXF schedule into a scenario",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runImportDoors(args[0], args[1])
		},
	}
}
