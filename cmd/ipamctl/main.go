// ipamctl manages IXP peering LAN addresses directly against the database.
//
// Usage:
//
//	ipamctl migrate                                      Apply pending migrations
//	ipamctl vlan list                                    List VLANs
//	ipamctl vlan import <file.yaml>                      Create VLANs and allocate their networks
//	ipamctl address enumerate <network>                  Print the addresses a network expands to
//	ipamctl address allocate -V <id> <network>           Store every address of a network
//	ipamctl address deletable -V <id> <network>          Preview a delete by network
//	ipamctl address delete-by-network -V <id> <network>  Delete unbound addresses of a network
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	dsn        string
	jsonOutput bool
	verbose    bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "ipamctl",
	Short:             "Manage IXP peering LAN addresses",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `ipamctl talks to the IPAM database directly.

The connection string comes from --dsn or DB_CONN (a .env file in the
working directory is honoured).

  ipamctl address allocate -V 1 192.0.2.0/24 --skip-existing`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "postgres connection string (default $DB_CONN)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newMigrateCmd(),
		newVLANCmd(),
		newAddressCmd(),
	)
}
