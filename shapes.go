package main

import (
	"fmt"

	"github.com/akshatshahh/team-30/assets"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/spf13/cobra"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List the loaded shape profiles",
	Args:  cobra.NoArgs,
	RunE:  runShapes,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the embedded levels",
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runShapes(cmd *cobra.Command, args []string) error {
	shapes, err := cfg.LoadShapes(flagShapesPath)
	if err != nil {
		return err
	}

	fmt.Printf("  %-3s  %-10s  %-14s  %8s  %8s  %7s  %8s\n", "Key", "Name", "Flight", "Sustain", "Speed", "Gravity", "Bullet")
	fmt.Printf("  %-3s  %-10s  %-14s  %8s  %8s  %7s  %8s\n", "---", "----", "------", "-------", "-----", "-------", "------")
	for i, s := range shapes {
		fmt.Printf("  %-3d  %-10s  %-14s  %7.2fs  %8.0f  %7.2f  %7.1fs\n",
			i+1, s.Name, s.FlightPath, s.SustainSeconds, s.MoveSpeed, s.GravityScale, s.BulletLifetime)
	}
	return nil
}

func runLevels(cmd *cobra.Command, args []string) error {
	names, err := assets.LevelNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
