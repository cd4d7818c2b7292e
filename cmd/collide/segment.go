package main

import (
	"fmt"

	"github.com/ashfallgames/collisionbsp/collision"
	"github.com/spf13/cobra"
)

var (
	segmentScenePath  string
	segmentMaxFrac    float64
	segmentFrontOnly  bool
	segmentBackOnly   bool
)

var segmentCmd = &cobra.Command{
	Use:   "segment {ox} {oy} {oz} {dx} {dy} {dz}",
	Short: "Test a segment (origin, delta) against the scene",
	Args:  cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadScene(segmentScenePath)
		if err != nil {
			return err
		}
		origin, err := parseVector3(args[0:3])
		if err != nil {
			return err
		}
		delta, err := parseVector3(args[3:6])
		if err != nil {
			return err
		}

		var flags collision.Flags
		if segmentFrontOnly {
			flags |= collision.FlagFrontFacingSurfaces
		}
		if segmentBackOnly {
			flags |= collision.FlagBackFacingSurfaces
		}

		var result collision.Result
		collision.TestSegment(b, nil, origin, delta, float32(segmentMaxFrac), flags, collision.DefaultOptions(), &result)

		if !result.Hit {
			fmt.Println("no hit")
			return nil
		}
		fmt.Printf("hit surface %d at fraction %g (split plane %d)\n", result.Surface, result.Fraction, result.LastSplit)
		fmt.Printf("leaves visited: %v\n", result.Leaves.Visited())
		return nil
	},
}

func init() {
	segmentCmd.Flags().StringVarP(&segmentScenePath, "scene", "s", "scene.yaml", "scene file to load")
	segmentCmd.Flags().Float64Var(&segmentMaxFrac, "max-fraction", 1, "maximum fraction along the segment to search")
	segmentCmd.Flags().BoolVar(&segmentFrontOnly, "front-only", false, "only report front-facing surfaces")
	segmentCmd.Flags().BoolVar(&segmentBackOnly, "back-only", false, "only report back-facing surfaces")
	rootCmd.AddCommand(segmentCmd)
}
