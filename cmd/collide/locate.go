package main

import (
	"fmt"

	"github.com/ashfallgames/collisionbsp/bsp"
	"github.com/ashfallgames/collisionbsp/geom"
	"github.com/spf13/cobra"
)

var locateScenePath string

var locateCmd = &cobra.Command{
	Use:   "locate {x} {y} {z}",
	Short: "Find the leaf containing a point",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadScene(locateScenePath)
		if err != nil {
			return err
		}
		point, err := parseVector3(args)
		if err != nil {
			return err
		}

		leaf := bsp.LocateLeaf(b, 0, point)
		if leaf == bsp.ExteriorSentinel {
			fmt.Println("exterior")
			return nil
		}
		fmt.Printf("leaf %d (%s)\n", leaf, b.ClassifyLeaf(leaf))
		return nil
	},
}

func parseVector3(args []string) (geom.Vector3, error) {
	var v [3]float64
	for i, a := range args {
		if _, err := fmt.Sscanf(a, "%g", &v[i]); err != nil {
			return geom.Vector3{}, fmt.Errorf("parsing coordinate %q: %w", a, err)
		}
	}
	return geom.Vector3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}, nil
}

func init() {
	locateCmd.Flags().StringVarP(&locateScenePath, "scene", "s", "scene.yaml", "scene file to load")
	rootCmd.AddCommand(locateCmd)
}
