// Command schemagen generates Go type definitions from a live database
// schema, or verifies that previously generated definitions still match.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	_ "modernc.org/sqlite"

	"github.com/syssam/schemagen/dialect/sql"
	"github.com/syssam/schemagen/gen"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "schemagen",
	Short: "Generate Go type definitions from a live database schema",
	Long: `schemagen introspects a MySQL, PostgreSQL or SQLite database and emits a
single Go file with one row struct per table plus a Tables mapping.

With --verify the target file is compared against freshly generated output
instead of being overwritten; a mismatch fails and the diff is logged at
debug level.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, _ []string) error {
	dsn := viper.GetString("dsn")
	if dsn == "" {
		return fmt.Errorf("dsn is required (via flag, config or SCHEMAGEN_DSN)")
	}
	logger, err := newLogger(viper.GetString("log-level"))
	if err != nil {
		return err
	}

	drv, err := sql.OpenURL(dsn)
	if err != nil {
		return err
	}
	defer drv.Close()

	opts := []gen.Option{
		gen.WithPackage(viper.GetString("package")),
		gen.WithLogger(logger),
	}
	if viper.GetBool("camelcase") {
		opts = append(opts, gen.WithCamelCase())
	}
	if out := viper.GetString("out"); out != "" {
		opts = append(opts, gen.WithTarget(out))
	}
	if viper.GetBool("verify") {
		opts = append(opts, gen.WithVerify())
	}

	res, err := gen.Generate(cmd.Context(), drv, opts...)
	if err != nil {
		return err
	}
	if res.Path == "" {
		_, err = os.Stdout.Write(res.Source)
	}
	return err
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "", "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./schemagen.yaml)")
	rootCmd.Flags().String("dsn", "", "connection string; the scheme selects the engine (mysql://, postgres://, or a sqlite path)")
	rootCmd.Flags().String("out", "", "output file; prints to stdout when empty")
	rootCmd.Flags().String("package", "schema", "package name of the generated file")
	rootCmd.Flags().Bool("camelcase", false, "convert snake_case identifiers to CamelCase")
	rootCmd.Flags().Bool("verify", false, "compare against the output file instead of overwriting it")
	rootCmd.Flags().String("log-level", "info", "log level: debug, info, warn or error")

	for _, name := range []string{"dsn", "out", "package", "camelcase", "verify", "log-level"} {
		_ = viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("schemagen")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("SCHEMAGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
