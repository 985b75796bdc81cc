package subnet

import (
	"fmt"
	"math"
)

// Field names an answer on a single-subnet problem.
type Field string

const (
	FieldNetwork    Field = "Network"
	FieldFirstHost  Field = "First Host"
	FieldLastHost   Field = "Last Host"
	FieldBroadcast  Field = "Broadcast"
	FieldNextSubnet Field = "Next Subnet"
)

// Fields lists every Field in display order.
var Fields = []Field{FieldNetwork, FieldFirstHost, FieldLastHost, FieldBroadcast, FieldNextSubnet}

// Answers maps each Field to its dotted-decimal value.
type Answers map[Field]string

// Derivation holds the addresses derived from one network.
type Derivation struct {
	Network    Network
	FirstHost  Address
	LastHost   Address
	Broadcast  Address
	NextSubnet Network
}

// Derive computes network, host range, broadcast and the following subnet.
// First and last host are plain network+1 and broadcast-1, so /31 and /32 give
// degenerate ranges. Any value that leaves the 32-bit space fails with
// ErrAddressOverflow.
func Derive(n Network) (Derivation, error) {
	if n.Bits < 0 || n.Bits > 32 {
		return Derivation{}, fmt.Errorf("%w: prefix length %d", ErrInvalidNetwork, n.Bits)
	}

	network := n.Masked()
	broadcast := uint64(network.Broadcast())
	first := uint64(network.Addr) + 1
	last := int64(broadcast) - 1
	next := uint64(network.Addr) + network.Size()

	switch {
	case first > math.MaxUint32:
		return Derivation{}, fmt.Errorf("%w: first host of %s", ErrAddressOverflow, network)
	case last < 0:
		return Derivation{}, fmt.Errorf("%w: last host of %s", ErrAddressOverflow, network)
	case next > math.MaxUint32:
		return Derivation{}, fmt.Errorf("%w: subnet after %s", ErrAddressOverflow, network)
	}

	return Derivation{
		Network:    network,
		FirstHost:  Address(first),
		LastHost:   Address(last),
		Broadcast:  Address(broadcast),
		NextSubnet: Network{Addr: Address(next), Bits: network.Bits},
	}, nil
}

func (d Derivation) Answers() Answers {
	return Answers{
		FieldNetwork:    d.Network.Addr.String(),
		FieldFirstHost:  d.FirstHost.String(),
		FieldLastHost:   d.LastHost.String(),
		FieldBroadcast:  d.Broadcast.String(),
		FieldNextSubnet: d.NextSubnet.Addr.String(),
	}
}

// DeriveString parses an "a.b.c.d/p" string and returns its answers.
func DeriveString(cidr string) (Answers, error) {
	n, err := ParseNetwork(cidr)
	if err != nil {
		return nil, err
	}
	d, err := Derive(n)
	if err != nil {
		return nil, err
	}
	return d.Answers(), nil
}
