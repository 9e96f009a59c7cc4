package domain

type CreateVLANInput struct {
	Name    string
	Number  int32
	Private bool
}

type CreateIPInput struct {
	IP string
}

type CreateInterfaceInput struct {
	Hostname      string
	IPv4AddressID IPAddressID
	IPv6AddressID IPAddressID
}

// AllocationOptions are the caller's switches for a bulk allocation.
// DecimalOnly and AllowOverflow only affect IPv6 networks.
type AllocationOptions struct {
	SkipExisting  bool
	DecimalOnly   bool
	AllowOverflow bool
}
