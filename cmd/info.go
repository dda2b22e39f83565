package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/slidetools/szi2svs/internal/convert"
)

var infoCmd = &cobra.Command{
	Use:   "info <input.szi>",
	Short: "Show what an SZI archive contains",
	Long: `Inspect an SZI archive without converting it.

Prints the descriptor dimensions, the tile root, every zoom level present
with its tile count, and the level a conversion would stitch.

Examples:
  szi2svs info slide.szi`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert.Inspect(args[0], os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
