package subnet

import (
	"errors"
	"fmt"
	"math"
	"net/netip"

	"go4.org/netipx"
)

var (
	ErrInvalidNetwork  = errors.New("invalid network specification")
	ErrAddressOverflow = errors.New("address outside ipv4 range")
)

// Address is an IPv4 address in host byte order.
type Address uint32

func AddressFrom(addr netip.Addr) (Address, error) {
	if !addr.Is4() {
		return 0, fmt.Errorf("%w: %s is not ipv4", ErrInvalidNetwork, addr)
	}
	b := addr.As4()
	return Address(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])), nil
}

func (a Address) Addr() netip.Addr {
	return netip.AddrFrom4([4]byte{byte(a >> 24), byte(a >> 16), byte(a >> 8), byte(a)})
}

func (a Address) String() string {
	return a.Addr().String()
}

// Network is an address with a prefix length. The address is kept as given;
// Masked returns the boundary-normalised form.
type Network struct {
	Addr Address
	Bits int
}

// NewNetwork validates addr and bits. addr is taken as a wider integer so that
// values past the 32-bit range are reported instead of silently truncated.
func NewNetwork(addr uint64, bits int) (Network, error) {
	if bits < 0 || bits > 32 {
		return Network{}, fmt.Errorf("%w: prefix length %d", ErrInvalidNetwork, bits)
	}
	if addr > math.MaxUint32 {
		return Network{}, fmt.Errorf("%w: address %d", ErrInvalidNetwork, addr)
	}
	return Network{Addr: Address(addr), Bits: bits}, nil
}

// newStrictNetwork is NewNetwork that additionally refuses host bits.
func newStrictNetwork(addr uint64, bits int) (Network, error) {
	n, err := NewNetwork(addr, bits)
	if err != nil {
		return Network{}, err
	}
	if n.Masked().Addr != n.Addr {
		return Network{}, fmt.Errorf("%w: %s has host bits set", ErrInvalidNetwork, n)
	}
	return n, nil
}

// ParseNetwork parses "a.b.c.d/p". Host bits are allowed.
func ParseNetwork(s string) (Network, error) {
	prefix, err := netip.ParsePrefix(s)
	if err != nil {
		return Network{}, fmt.Errorf("%w: %v", ErrInvalidNetwork, err)
	}
	return NetworkFromPrefix(prefix)
}

func NetworkFromPrefix(prefix netip.Prefix) (Network, error) {
	if !prefix.IsValid() {
		return Network{}, fmt.Errorf("%w: invalid prefix", ErrInvalidNetwork)
	}
	addr, err := AddressFrom(prefix.Addr())
	if err != nil {
		return Network{}, err
	}
	return Network{Addr: addr, Bits: prefix.Bits()}, nil
}

// Size is the number of addresses in the block, 2^(32-bits).
func (n Network) Size() uint64 {
	return uint64(1) << (32 - n.Bits)
}

func (n Network) Mask() Address {
	return Address(^uint32(n.Size() - 1))
}

func (n Network) Masked() Network {
	return Network{Addr: n.Addr & n.Mask(), Bits: n.Bits}
}

func (n Network) Broadcast() Address {
	return n.Masked().Addr | ^n.Mask()
}

// UsableHosts is the raw capacity 2^(32-bits)-2; it is negative for /32.
func (n Network) UsableHosts() int64 {
	return int64(n.Size()) - 2
}

func (n Network) Prefix() netip.Prefix {
	return netip.PrefixFrom(n.Addr.Addr(), n.Bits)
}

func (n Network) Range() netipx.IPRange {
	return netipx.RangeOfPrefix(n.Prefix())
}

// Contains reports whether all of other's addresses lie inside n.
func (n Network) Contains(other Network) bool {
	outer, inner := n.Range(), other.Range()
	return !inner.From().Less(outer.From()) && !outer.To().Less(inner.To())
}

func (n Network) String() string {
	return n.Prefix().String()
}
