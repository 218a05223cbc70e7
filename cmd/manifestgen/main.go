package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JeongHan-Bae/manifestgen/internal/app"
	"github.com/JeongHan-Bae/manifestgen/internal/config"
	"github.com/JeongHan-Bae/manifestgen/internal/utils"
	"github.com/JeongHan-Bae/manifestgen/pkg/version"
)

var (
	cfgFile      string
	verbose      bool
	printVersion bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "manifestgen",
	Short: "Generate dependency manifests from CMake listfiles",
	Long: `manifestgen extracts the project version and FetchContent dependency
declarations from a project's CMake listfiles and writes portable manifest
artifacts: a JSON manifest, a TOML manifest and a shields.io version badge
descriptor, for consumption by CI reporting and documentation tooling.

Missing listfiles degrade gracefully: the version falls back to "unknown"
and the dependency listing to the platform baseline alone.`,
	Version: version.Short(),
	Args:    cobra.NoArgs,
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./manifestgen.yaml)")
	rootCmd.PersistentFlags().String("root", ".", "Project root containing CMakeLists.txt")
	rootCmd.PersistentFlags().StringP("output", "o", ".", "Artifact output directory")
	rootCmd.PersistentFlags().String("format", config.FormatAll, "Manifest rendering to write (json, toml, all)")
	rootCmd.PersistentFlags().String("project-file", "", "YAML/JSON project identity override file")
	rootCmd.PersistentFlags().BoolVar(&printVersion, "print-version", false, "Print the resolved project version and exit without writing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("inputs.root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("inputs.project_file", rootCmd.PersistentFlags().Lookup("project-file"))
	_ = viper.BindPFlag("output.directory", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logLevel := "info"
	if verbose {
		logLevel = "debug"
	}
	log := utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  "pretty",
		Verbose: verbose,
	})

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	engine, err := app.NewEngine(app.EngineOptions{Config: cfg, Logger: log})
	if err != nil {
		return err
	}

	// Version-oracle mode for other automation
	if printVersion {
		v, err := engine.ResolveVersion()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	}

	res, err := engine.Run()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d artifact(s) for version %s\n", len(res.Paths), res.Version)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
