package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/atpage/chembal"
	"github.com/atpage/chembal/internal/cliconfig"
	"github.com/atpage/chembal/internal/watch"
	"github.com/atpage/chembal/internal/words"
	"github.com/atpage/chembal/pkg/log"
)

const longHelp = `Balance chemical reaction equations.

chembal parses each side of a reaction, builds the element balance
equations, and solves them exactly for the smallest whole-number
coefficients. Configure via flags, CHEMBAL_* environment variables, or
~/.chembal/config.toml (flags win, then environment, then file).`

var exampleUsage = strings.TrimSpace(`
  chembal balance "C4H10 + O2 -> CO2 + H2O"
  chembal batch reactions.txt --watch
  chembal words wdro --dict /usr/share/dict/words
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:          "chembal",
		Short:        "Balance chemical reaction equations",
		Long:         longHelp,
		Example:      exampleUsage,
		Version:      fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage: true,
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd, &cfg, cfgPath)
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.chembal/config.toml)")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: trace, debug, info, warn, error")
	root.PersistentFlags().StringVar(&cfg.Format, "format", cfg.Format, "output format: text or json")

	root.AddCommand(newBalanceCmd(&cfg))
	root.AddCommand(newBatchCmd(&cfg))
	root.AddCommand(newWordsCmd(&cfg))
	return root
}

// loadConfig applies config file and environment values underneath any
// explicitly set flags, then validates the result.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) error {
	changed := map[string]bool{}
	visit := func(f *pflag.Flag) { changed[f.Name] = true }
	cmd.Flags().Visit(visit)
	cmd.InheritedFlags().Visit(visit)

	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	return cfg.Validate()
}

func newBalanceCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <reaction>",
		Short: "Balance a single reaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewZerologAdapterWithLogger(cliconfig.NewLogger(*cfg))
			balanced, err := chembal.BalanceWithLogger(args[0], logger)
			if err != nil {
				return err
			}
			return printBalanced(cmd.OutOrStdout(), *cfg, balanced)
		},
	}
}

func newBatchCmd(cfg *cliconfig.Config) *cobra.Command {
	var watchFile bool

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Balance one reaction per line from a file",
		Long: `Balance one reaction per line from a file. Blank lines and lines
starting with '#' are skipped. A failing line is reported and does not
stop the rest of the batch. With --watch, the batch re-runs whenever the
file changes, until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewZerologAdapterWithLogger(cliconfig.NewLogger(*cfg))
			path := args[0]

			if !watchFile {
				failed, err := runBatch(cmd.OutOrStdout(), *cfg, logger, path)
				if err != nil {
					return err
				}
				if failed > 0 {
					return fmt.Errorf("%d reaction(s) failed", failed)
				}
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := watch.New(path, cfg.WatchDebounce, logger)
			return w.Run(ctx, func() {
				if _, err := runBatch(cmd.OutOrStdout(), *cfg, logger, path); err != nil {
					logger.Error("batch run failed", log.Err(err))
				}
			})
		},
	}

	cmd.Flags().BoolVar(&watchFile, "watch", false, "re-run the batch when the file changes")
	cmd.Flags().DurationVar(&cfg.WatchDebounce, "debounce", cfg.WatchDebounce, "delay between a file change and the re-run")
	return cmd
}

// runBatch balances every reaction line in the file, reporting the number
// of lines that failed.
func runBatch(out io.Writer, cfg cliconfig.Config, logger log.Logger, path string) (failed int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		balanced, err := chembal.BalanceWithLogger(line, logger)
		if err != nil {
			logger.Error("cannot balance reaction",
				log.Int("line", lineNo),
				log.String("reaction", line),
				log.Err(err))
			failed++
			continue
		}
		if err := printBalanced(out, cfg, balanced); err != nil {
			return failed, err
		}
	}
	return failed, scanner.Err()
}

func newWordsCmd(cfg *cliconfig.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words <letters>",
		Short: "List dictionary words spellable from the given letters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.DictPath == "" {
				return fmt.Errorf("dictionary file required (--dict, CHEMBAL_DICT, or dict_path in config)")
			}
			dict, err := words.LoadDict(cfg.DictPath)
			if err != nil {
				return fmt.Errorf("load dictionary: %w", err)
			}

			matches := words.Match(args[0], dict, cfg.ReuseLetters)
			out := cmd.OutOrStdout()
			if cfg.Format == cliconfig.FormatJSON {
				enc := json.NewEncoder(out)
				return enc.Encode(matches)
			}
			for _, w := range matches {
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.DictPath, "dict", cfg.DictPath, "dictionary file, one word per line")
	cmd.Flags().BoolVar(&cfg.ReuseLetters, "reuse-letters", cfg.ReuseLetters, "allow each letter to be used more than once")
	return cmd
}

func printBalanced(out io.Writer, cfg cliconfig.Config, balanced chembal.BalancedReaction) error {
	if cfg.Format == cliconfig.FormatJSON {
		return json.NewEncoder(out).Encode(balanced)
	}
	_, err := fmt.Fprintln(out, balanced.String())
	return err
}
