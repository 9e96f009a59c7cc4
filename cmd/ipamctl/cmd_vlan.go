package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Flarenzy/ixp-ipam/internal/domain"
)

func newVLANCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vlan",
		Short: "Manage peering VLANs",
	}
	cmd.AddCommand(newVLANListCmd(), newVLANImportCmd())
	return cmd
}

func newVLANListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List VLANs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := openServices(ctx)
			if err != nil {
				return err
			}
			defer svc.Close()

			vlans, err := svc.network.ListVLANs(ctx)
			if err != nil {
				return err
			}
			if jsonOutput {
				if vlans == nil {
					vlans = []domain.VLAN{}
				}
				return printJSON(os.Stdout, vlans)
			}
			if len(vlans) == 0 {
				fmt.Println("no vlans")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNUMBER\tNAME\tPRIVATE")
			for _, v := range vlans {
				fmt.Fprintf(w, "%d\t%d\t%s\t%t\n", v.ID, v.Number, v.Name, v.Private)
			}
			return w.Flush()
		},
	}
}

type importedNetwork struct {
	Network     string `json:"network"`
	Inserted    int64  `json:"inserted"`
	Preexisting int    `json:"preexisting"`
}

type importedVLAN struct {
	ID       int64             `json:"id"`
	Number   int32             `json:"number"`
	Name     string            `json:"name"`
	Networks []importedNetwork `json:"networks"`
}

func newVLANImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Create VLANs and allocate their networks from a YAML file",
		Long: `Create each VLAN listed in the file and allocate its networks.

The file is validated before anything is written. VLANs are created in
file order; the first failing allocation stops the import.

  vlans:
    - name: peering-lan
      number: 100
      networks:
        - network: 192.0.2.0/24
        - network: 2001:db8::/120
          decimal_only: true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadImportPlan(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc, err := openServices(ctx)
			if err != nil {
				return err
			}
			defer svc.Close()

			var report []importedVLAN
			for _, vp := range plan.VLANs {
				vlan, err := svc.network.CreateVLAN(ctx, domain.CreateVLANInput{
					Name:    vp.Name,
					Number:  vp.Number,
					Private: vp.Private,
				})
				if err != nil {
					return fmt.Errorf("create vlan %d: %w", vp.Number, err)
				}

				entry := importedVLAN{ID: vlan.ID, Number: vlan.Number, Name: vlan.Name, Networks: []importedNetwork{}}
				for _, np := range vp.Networks {
					result, err := svc.allocations.Allocate(ctx, vlan.ID, np.Network, np.options())
					if err != nil && !errors.Is(err, domain.ErrNothingToAllocate) {
						return fmt.Errorf("allocate %s on vlan %d: %w", np.Network, vp.Number, err)
					}
					entry.Networks = append(entry.Networks, importedNetwork{
						Network:     result.Network.String(),
						Inserted:    result.Inserted,
						Preexisting: len(result.Preexisting),
					})
				}
				report = append(report, entry)

				if !jsonOutput {
					fmt.Printf("vlan %d (%s) created with id %d\n", vlan.Number, vlan.Name, vlan.ID)
					for _, n := range entry.Networks {
						fmt.Printf("  %s: %d inserted, %d preexisting\n", n.Network, n.Inserted, n.Preexisting)
					}
				}
			}

			if jsonOutput {
				return printJSON(os.Stdout, report)
			}
			return nil
		},
	}
}
