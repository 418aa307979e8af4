package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campusdata/insight"
	"github.com/campusdata/insight/sql"
)

var (
	configFile string
	dataDir    string
	format     string
)

var rootCmd = &cobra.Command{
	Use:           "insight",
	Short:         "Query course sections and campus rooms datasets",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func open() (*insight.Insight, error) {
	cfg := insight.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = insight.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
	}

	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	return insight.Open(cfg)
}

func withInsight(cmd *cobra.Command, fn func(*insight.Insight, *sql.Context) error) error {
	i, err := open()
	if err != nil {
		return err
	}
	defer i.Close()

	return fn(i, sql.NewContext(cmd.Context()))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory where datasets are persisted")
	rootCmd.PersistentFlags().StringVar(&format, "format", formatTable, "output format: json or table")

	addCmd := &cobra.Command{
		Use:   "add <id> <courses|rooms> <zip>",
		Short: "Load a zip archive as a new dataset",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := sql.ParseKind(args[1])
			if err != nil {
				return err
			}

			content, err := os.ReadFile(args[2])
			if err != nil {
				return err
			}

			return withInsight(cmd, func(i *insight.Insight, ctx *sql.Context) error {
				ids, err := i.AddDataset(ctx, args[0], content, kind)
				if err != nil {
					return err
				}
				return writeIDs(cmd.OutOrStdout(), format, ids)
			})
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInsight(cmd, func(i *insight.Insight, ctx *sql.Context) error {
				id, err := i.RemoveDataset(ctx, args[0])
				if err != nil {
					return err
				}
				return writeIDs(cmd.OutOrStdout(), format, []string{id})
			})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the loaded datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInsight(cmd, func(i *insight.Insight, ctx *sql.Context) error {
				return writeDatasets(cmd.OutOrStdout(), format, i.ListDatasets(ctx))
			})
		},
	}

	queryCmd := &cobra.Command{
		Use:   "query <file>",
		Short: "Perform a query read from a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			return withInsight(cmd, func(i *insight.Insight, ctx *sql.Context) error {
				var r *insight.Result
				switch strings.ToLower(filepath.Ext(args[0])) {
				case ".yml", ".yaml":
					r, err = i.PerformQueryYAML(ctx, data)
				default:
					r, err = i.PerformQueryJSON(ctx, data)
				}
				if err != nil {
					return err
				}
				return writeResult(cmd.OutOrStdout(), format, r)
			})
		},
	}

	rootCmd.AddCommand(addCmd, removeCmd, listCmd, queryCmd)
}
