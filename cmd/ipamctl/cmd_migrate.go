package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appdb "github.com/Flarenzy/ixp-ipam/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			applied, err := appdb.Migrate(ctx, pool)
			if err != nil {
				return err
			}
			if jsonOutput {
				if applied == nil {
					applied = []string{}
				}
				return printJSON(os.Stdout, map[string][]string{"applied": applied})
			}
			if len(applied) == 0 {
				fmt.Println("database is up to date")
				return nil
			}
			for _, name := range applied {
				fmt.Printf("applied %s\n", name)
			}
			return nil
		},
	}
}
