package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Flarenzy/ixp-ipam/internal/domain"
	"github.com/Flarenzy/ixp-ipam/internal/netseq"
)

var (
	vlanID        int64
	skipExisting  bool
	decimalOnly   bool
	allowOverflow bool
	confirm       bool
)

func newAddressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Allocate and release peering LAN addresses",
	}
	cmd.AddCommand(
		newAddressEnumerateCmd(),
		newAddressAllocateCmd(),
		newAddressDeletableCmd(),
		newAddressDeleteByNetworkCmd(),
	)
	return cmd
}

func addVLANFlag(cmd *cobra.Command) {
	cmd.Flags().Int64VarP(&vlanID, "vlan", "V", 0, "VLAN id")
	_ = cmd.MarkFlagRequired("vlan")
}

func addSequenceFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&decimalOnly, "decimal-only", false, "IPv6: keep addresses whose last segment has no hex letters")
	cmd.Flags().BoolVar(&allowOverflow, "allow-overflow", false, "IPv6 with --decimal-only: scan past the network until its size is reached")
}

func sequenceOptions() (netseq.Options, error) {
	if allowOverflow && !decimalOnly {
		return netseq.Options{}, errors.New("--allow-overflow requires --decimal-only")
	}
	return netseq.Options{DecimalOnly: decimalOnly, AllowOverflow: allowOverflow}, nil
}

func newAddressEnumerateCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "enumerate <network>",
		Short: "Print the addresses a network expands to without touching the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := sequenceOptions()
			if err != nil {
				return err
			}
			network, err := netseq.ParseNetwork(args[0])
			if err != nil {
				return err
			}
			addrs, err := network.Collect(opts, limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				out := netseq.Strings(addrs)
				if out == nil {
					out = []string{}
				}
				return printJSON(os.Stdout, map[string]any{
					"network":   network.String(),
					"family":    network.Family().Code(),
					"addresses": out,
				})
			}
			for _, a := range addrs {
				fmt.Println(a)
			}
			return nil
		},
	}
	addSequenceFlags(cmd)
	cmd.Flags().IntVar(&limit, "limit", domain.DefaultMaxAllocation, "refuse networks producing more addresses (0 = no limit)")
	return cmd
}

func newAddressAllocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allocate <network>",
		Short: "Store every address of a network on a VLAN",
		Long: `Store every address of a network on a VLAN in one batch.

Without --skip-existing the command fails and writes nothing when any
address of the network is already stored on the VLAN.

  ipamctl address allocate -V 1 192.0.2.0/24
  ipamctl address allocate -V 1 2001:db8::/120 --decimal-only --skip-existing`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := sequenceOptions()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc, err := openServices(ctx)
			if err != nil {
				return err
			}
			defer svc.Close()

			result, err := svc.allocations.Allocate(ctx, vlanID, args[0], domain.AllocationOptions{
				SkipExisting:  skipExisting,
				DecimalOnly:   opts.DecimalOnly,
				AllowOverflow: opts.AllowOverflow,
			})
			var conflict *domain.ConflictError
			switch {
			case errors.As(err, &conflict):
				return fmt.Errorf("%w (use --skip-existing to keep them and allocate the rest)", err)
			case errors.Is(err, domain.ErrNothingToAllocate):
				fmt.Fprintf(os.Stderr, "nothing to allocate: %d address(es) already exist\n", len(result.Preexisting))
			case err != nil:
				return err
			}

			if jsonOutput {
				return printJSON(os.Stdout, allocationReport(result))
			}
			fmt.Printf("%s on vlan %d: %d inserted, %d preexisting\n",
				result.Network, vlanID, result.Inserted, len(result.Preexisting))
			return nil
		},
	}
	addVLANFlag(cmd)
	addSequenceFlags(cmd)
	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "keep addresses already on the VLAN and allocate the rest")
	return cmd
}

func allocationReport(result domain.AllocationResult) map[string]any {
	newAddrs := netseq.Strings(result.New)
	if newAddrs == nil {
		newAddrs = []string{}
	}
	preexisting := netseq.Strings(result.Preexisting)
	if preexisting == nil {
		preexisting = []string{}
	}
	return map[string]any{
		"network":     result.Network.String(),
		"state":       result.State.String(),
		"inserted":    result.Inserted,
		"new":         newAddrs,
		"preexisting": preexisting,
	}
}

func newAddressDeletableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deletable <network>",
		Short: "List stored addresses of a network that are not bound to an interface",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := openServices(ctx)
			if err != nil {
				return err
			}
			defer svc.Close()

			ips, err := svc.allocations.PreviewDeletable(ctx, vlanID, args[0])
			if err != nil {
				return err
			}
			return printDeletable(ips)
		},
	}
	addVLANFlag(cmd)
	return cmd
}

func printDeletable(ips []domain.IPAddress) error {
	if jsonOutput {
		out := make([]string, 0, len(ips))
		for _, ip := range ips {
			out = append(out, ip.IP.String())
		}
		return printJSON(os.Stdout, map[string][]string{"deletable": out})
	}
	if len(ips) == 0 {
		fmt.Println("nothing to delete")
		return nil
	}
	for _, ip := range ips {
		fmt.Println(ip.IP)
	}
	return nil
}

func newAddressDeleteByNetworkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-by-network <network>",
		Short: "Delete stored addresses of a network that are not bound to an interface",
		Long: `Delete stored addresses of a network that are not bound to an interface.

Without --confirm the command only prints what would be deleted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := openServices(ctx)
			if err != nil {
				return err
			}
			defer svc.Close()

			if !confirm {
				ips, err := svc.allocations.PreviewDeletable(ctx, vlanID, args[0])
				if err != nil {
					return err
				}
				if err := printDeletable(ips); err != nil {
					return err
				}
				if len(ips) > 0 && !jsonOutput {
					fmt.Fprintln(os.Stderr, "re-run with --confirm to delete")
				}
				return nil
			}

			deleted, err := svc.allocations.ConfirmDelete(ctx, vlanID, args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(os.Stdout, map[string]int64{"deleted": deleted})
			}
			fmt.Printf("deleted %d address(es)\n", deleted)
			return nil
		},
	}
	addVLANFlag(cmd)
	cmd.Flags().BoolVar(&confirm, "confirm", false, "actually delete")
	return cmd
}
