package cmd

import (
	"github.com/spf13/cobra"

	"github.com/slidetools/szi2svs/internal/convert"
)

var imageCmd = &cobra.Command{
	Use:   "image <input> <output.svs>",
	Short: "Convert a plain single-resolution image to a pyramidal SVS",
	Long: `Convert a plain raster file to a pyramidal tiled TIFF.

The source can be any format libvips reads (TIFF, PNG, JPEG, ...). There
is no tile structure to reconstruct; the image is loaded and re-encoded
with the same fixed pyramid profile the szi command uses.

Examples:
  szi2svs image slide.tif slide.svs`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert.ImageToSVS(args[0], args[1], progressWriter())
	},
}

func init() {
	rootCmd.AddCommand(imageCmd)
}
