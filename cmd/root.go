package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "szi2svs",
	Short: "Convert whole-slide images to pyramidal SVS-style TIFF",
	Long: `szi2svs converts whole-slide pathology images into the pyramidal
tiled TIFF profile that slide viewers expect.

An SZI archive is a zip container with a scan/ root holding a .dzi
descriptor and a <name>_files/<level>/<col>_<row>.<ext> Deep Zoom tile
tree. The deepest zoom level is stitched back into one full-resolution
raster and re-encoded through libvips as a JPEG-compressed pyramid with
256x256 internal tiles at quality 85.

Examples:
  # Convert an SZI archive to SVS
  szi2svs szi slide.szi slide.svs

  # Convert a plain single-resolution image to SVS
  szi2svs image slide.tif slide.svs

  # Inspect an SZI archive without converting it
  szi2svs info slide.szi

  # Suppress progress output
  szi2svs szi --quiet slide.szi slide.svs`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.szi2svs.yaml)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".szi2svs" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".szi2svs")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// progressWriter is where the pipeline stages report what they are doing.
func progressWriter() io.Writer {
	if viper.GetBool("quiet") {
		return io.Discard
	}
	return os.Stderr
}
