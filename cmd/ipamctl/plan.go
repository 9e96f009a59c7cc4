package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Flarenzy/ixp-ipam/internal/domain"
	"github.com/Flarenzy/ixp-ipam/internal/netseq"
)

// importPlan describes VLANs to create and the networks to allocate on them:
//
//	vlans:
//	  - name: peering-lan
//	    number: 100
//	    networks:
//	      - network: 192.0.2.0/24
//	      - network: 2001:db8::/120
//	        decimal_only: true
type importPlan struct {
	VLANs []vlanPlan `yaml:"vlans"`
}

type vlanPlan struct {
	Name     string        `yaml:"name"`
	Number   int32         `yaml:"number"`
	Private  bool          `yaml:"private"`
	Networks []networkPlan `yaml:"networks"`
}

type networkPlan struct {
	Network       string `yaml:"network"`
	SkipExisting  bool   `yaml:"skip_existing"`
	DecimalOnly   bool   `yaml:"decimal_only"`
	AllowOverflow bool   `yaml:"allow_overflow"`
}

func (n networkPlan) options() domain.AllocationOptions {
	return domain.AllocationOptions{
		SkipExisting:  n.SkipExisting,
		DecimalOnly:   n.DecimalOnly,
		AllowOverflow: n.AllowOverflow,
	}
}

func loadImportPlan(path string) (importPlan, error) {
	f, err := os.Open(path)
	if err != nil {
		return importPlan{}, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()
	return parseImportPlan(f)
}

func parseImportPlan(r io.Reader) (importPlan, error) {
	var plan importPlan
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&plan); err != nil {
		if errors.Is(err, io.EOF) {
			return importPlan{}, errors.New("import file is empty")
		}
		return importPlan{}, fmt.Errorf("parse import file: %w", err)
	}
	if err := plan.validate(); err != nil {
		return importPlan{}, err
	}
	return plan, nil
}

// validate checks everything that can be checked without the database, so a
// bad file fails before any VLAN is created.
func (p importPlan) validate() error {
	if len(p.VLANs) == 0 {
		return errors.New("import file lists no vlans")
	}

	var errs []error
	numbers := make(map[int32]bool, len(p.VLANs))
	for i, v := range p.VLANs {
		if strings.TrimSpace(v.Name) == "" {
			errs = append(errs, fmt.Errorf("vlans[%d]: name is required", i))
		}
		if v.Number < 1 || v.Number > 4094 {
			errs = append(errs, fmt.Errorf("vlans[%d]: number %d out of range 1-4094", i, v.Number))
		}
		if numbers[v.Number] {
			errs = append(errs, fmt.Errorf("vlans[%d]: number %d listed twice", i, v.Number))
		}
		numbers[v.Number] = true

		for j, n := range v.Networks {
			if _, err := netseq.ParseNetwork(n.Network); err != nil {
				errs = append(errs, fmt.Errorf("vlans[%d].networks[%d]: %w", i, j, err))
			}
		}
	}
	return errors.Join(errs...)
}
