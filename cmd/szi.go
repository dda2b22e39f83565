package cmd

import (
	"github.com/spf13/cobra"

	"github.com/slidetools/szi2svs/internal/convert"
)

var sziCmd = &cobra.Command{
	Use:   "szi <input.szi> <output.svs>",
	Short: "Convert an SZI Deep Zoom archive to a pyramidal SVS",
	Long: `Convert an SZI archive to a pyramidal tiled TIFF.

The archive is extracted into memory, the deepest zoom level of the Deep
Zoom tile tree is stitched into one full-resolution raster, and the result
is written as a JPEG-compressed pyramid. Nothing is written on failure.

Examples:
  szi2svs szi slide.szi slide.svs`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert.SZIToSVS(args[0], args[1], progressWriter())
	},
}

func init() {
	rootCmd.AddCommand(sziCmd)
}
