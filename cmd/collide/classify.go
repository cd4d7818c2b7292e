package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var classifyScenePath string

var classifyCmd = &cobra.Command{
	Use:   "classify {leaf-index}",
	Short: "Print the leaf kind (interior/double-sided/exterior) for a leaf index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadScene(classifyScenePath)
		if err != nil {
			return err
		}
		var leaf int32
		if _, err := fmt.Sscanf(args[0], "%d", &leaf); err != nil {
			return fmt.Errorf("parsing leaf index %q: %w", args[0], err)
		}
		fmt.Println(b.ClassifyLeaf(leaf))
		return nil
	},
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyScenePath, "scene", "s", "scene.yaml", "scene file to load")
	rootCmd.AddCommand(classifyCmd)
}
