package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"medbot/pkg/database"
)

func newMigrateCmd() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(appOptions{}, func(a *app) error {
				if err := database.Migrate(a.db); err != nil {
					return err
				}
				a.log.Info("migrations applied", "driver", a.cfg.DB.Driver)

				if !seed {
					return nil
				}
				n, err := database.Seed(a.db)
				if err != nil {
					return err
				}
				a.log.Info("seed complete", "inserted", n)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "Insert sample drugs when the cache is empty")
	return cmd
}

func newPurgeCmd() *cobra.Command {
	var (
		olderThan time.Duration
		all       bool
	)
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete cached drug records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(appOptions{withHotCache: true}, func(a *app) error {
				var (
					removed int64
					err     error
				)
				if all {
					removed, err = a.admin.Clear(cmd.Context())
				} else {
					if olderThan == 0 {
						olderThan = a.cfg.Cache.PurgeAfter
					}
					removed, err = a.admin.Purge(cmd.Context(), olderThan)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached drug records\n", removed)
				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "Age cutoff (defaults to CACHE_PURGE_AFTER)")
	cmd.Flags().BoolVar(&all, "all", false, "Remove every cached record")
	return cmd
}

func newLookupCmd() *cobra.Command {
	var callerID int64
	cmd := &cobra.Command{
		Use:   "lookup <term>",
		Short: "Resolve a drug term through the cache",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")
			return withApp(appOptions{withHotCache: true}, func(a *app) error {
				if callerID != 0 {
					a.accounting.RecordSearch(cmd.Context(), callerID, term)
				}
				drugs, err := a.resolver.ResolveDrug(cmd.Context(), term)
				if err != nil {
					return err
				}
				return printJSON(cmd, drugs)
			})
		},
	}
	cmd.Flags().Int64Var(&callerID, "caller", 0, "Record the search against this caller id")
	return cmd
}

func newRecallsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recalls <term|all>",
		Short: "Search enforcement reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")
			return withApp(appOptions{}, func(a *app) error {
				recalls, err := a.resolver.ResolveRecalls(cmd.Context(), term)
				if err != nil {
					return err
				}
				return printJSON(cmd, recalls)
			})
		},
	}
}

func newStatsCmd() *cobra.Command {
	var callerID int64
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print cache and search statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(appOptions{}, func(a *app) error {
				ctx := cmd.Context()
				cacheStats, err := a.admin.Stats(ctx)
				if err != nil {
					return err
				}
				callers, err := a.accounting.TotalCallers(ctx)
				if err != nil {
					return err
				}

				out := map[string]interface{}{
					"cache":   cacheStats,
					"callers": callers,
				}
				if callerID != 0 {
					out["caller"] = map[string]interface{}{
						"caller_id":    callerID,
						"search_count": a.accounting.GetSearchCount(ctx, callerID),
					}
				}
				return printJSON(cmd, out)
			})
		},
	}
	cmd.Flags().Int64Var(&callerID, "caller", 0, "Also print the search count of this caller id")
	return cmd
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

