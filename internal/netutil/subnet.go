// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package netutil

import (
	"fmt"
	"net/netip"
)

// SubnetInfo describes an IPv4 block.
type SubnetInfo struct {
	Network     netip.Prefix
	Netmask     netip.Addr
	Address     netip.Addr // network address
	Broadcast   netip.Addr
	FirstUsable netip.Addr
	LastUsable  netip.Addr
	UsableCount int // 0 for /31 and /32
}

// Subnet computes subnet facts for an address and a dotted-quad mask.
func Subnet(ip, mask string) (*SubnetInfo, error) {
	addr, err := netip.ParseAddr(ip)
	if err != nil || !addr.Is4() {
		return nil, fmt.Errorf("invalid IPv4 address %q", ip)
	}
	maskAddr, err := netip.ParseAddr(mask)
	if err != nil || !maskAddr.Is4() {
		return nil, fmt.Errorf("invalid subnet mask %q", mask)
	}

	bits, err := maskBits(maskAddr)
	if err != nil {
		return nil, err
	}

	prefix, err := addr.Prefix(bits)
	if err != nil {
		return nil, fmt.Errorf("failed to derive prefix: %w", err)
	}

	network := prefix.Addr()
	broadcast := broadcastAddr(prefix)

	total := 1 << (32 - bits)
	usable := 0
	first, last := network, broadcast
	if total > 2 {
		usable = total - 2
		first = network.Next()
		last = prevAddr(broadcast)
	}

	return &SubnetInfo{
		Network:     prefix,
		Netmask:     maskAddr,
		Address:     network,
		Broadcast:   broadcast,
		FirstUsable: first,
		LastUsable:  last,
		UsableCount: usable,
	}, nil
}

// Rows returns label/value pairs for table output.
func (s *SubnetInfo) Rows() [][2]string {
	return [][2]string{
		{"Network", s.Network.String()},
		{"Subnet Mask", s.Netmask.String()},
		{"Subnet", s.Address.String()},
		{"Broadcast", s.Broadcast.String()},
		{"First IP", s.FirstUsable.String()},
		{"Last IP", s.LastUsable.String()},
		{"Usable IPs", fmt.Sprintf("%d", s.UsableCount)},
	}
}

// Hosts returns every usable address in the block, in order. Empty for /31
// and /32.
func (s *SubnetInfo) Hosts() []netip.Addr {
	if s.UsableCount == 0 {
		return nil
	}
	hosts := make([]netip.Addr, 0, s.UsableCount)
	for a := s.FirstUsable; a.Compare(s.LastUsable) <= 0; a = a.Next() {
		hosts = append(hosts, a)
	}
	return hosts
}

// maskBits converts a dotted-quad netmask to a prefix length, rejecting
// non-contiguous masks.
func maskBits(mask netip.Addr) (int, error) {
	b := mask.As4()
	v := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])

	bits := 0
	for v&0x80000000 != 0 {
		bits++
		v <<= 1
	}
	if v != 0 {
		return 0, fmt.Errorf("non-contiguous subnet mask %s", mask)
	}
	return bits, nil
}

func broadcastAddr(p netip.Prefix) netip.Addr {
	b := p.Addr().As4()
	host := 32 - p.Bits()
	v := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	if host > 0 {
		v |= 1<<host - 1
	}
	return netip.AddrFrom4([4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

func prevAddr(a netip.Addr) netip.Addr {
	b := a.As4()
	v := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]) - 1
	return netip.AddrFrom4([4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}
