package subnet

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlanPacksAlignedSubnets(t *testing.T) {
	records, err := PlanString("10.0.0.0/24", []int{10, 10}, DefaultPlanSize)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "10.0.0.0/28", records[0].Subnet.String())
	require.Equal(t, "10.0.0.16/28", records[1].Subnet.String())
	require.Equal(t, 10, records[1].RequiredHosts)
}

func TestPlanPadsToBoundary(t *testing.T) {
	records, err := PlanString("10.0.0.77/24", []int{10, 100, 20}, DefaultPlanSize)
	require.NoError(t, err)
	require.Equal(t, []string{"10.0.0.0/28", "10.0.0.128/25"}, subnetStrings(records))
}

func TestPlanNormalisesBase(t *testing.T) {
	records, err := PlanString("192.168.7.200/16", []int{500}, DefaultPlanSize)
	require.NoError(t, err)
	require.Equal(t, []string{"192.168.0.0/23"}, subnetStrings(records))
}

func TestPrefixForHosts(t *testing.T) {
	tests := []struct {
		hosts int
		bits  int
		ok    bool
	}{
		{hosts: -5, bits: 32, ok: true},
		{hosts: -1, bits: 32, ok: true},
		{hosts: 0, bits: 31, ok: true},
		{hosts: 1, bits: 30, ok: true},
		{hosts: 2, bits: 30, ok: true},
		{hosts: 3, bits: 29, ok: true},
		{hosts: 10, bits: 28, ok: true},
		{hosts: 14, bits: 28, ok: true},
		{hosts: 15, bits: 27, ok: true},
		{hosts: 254, bits: 24, ok: true},
		{hosts: 500, bits: 23, ok: true},
		{hosts: 1<<31 - 2, bits: 1, ok: true},
		{hosts: math.MaxInt32, ok: false},
	}
	for _, tt := range tests {
		bits, ok := PrefixForHosts(tt.hosts)
		require.Equal(t, tt.ok, ok, "hosts=%d", tt.hosts)
		require.Equal(t, tt.bits, bits, "hosts=%d", tt.hosts)
	}
}

func TestPlanZeroAndNegativeRequirements(t *testing.T) {
	records, err := PlanString("10.0.0.0/24", []int{0, -3, 0}, DefaultPlanSize)
	require.NoError(t, err)
	require.Equal(t, []string{"10.0.0.0/31", "10.0.0.2/32", "10.0.0.4/31"}, subnetStrings(records))
}

func TestPlanSkipsUnsatisfiableRequirement(t *testing.T) {
	base, err := ParseNetwork("10.0.0.0/24")
	require.NoError(t, err)

	report := PlanWithReport(base, []int{10, math.MaxInt32, 10}, DefaultPlanSize)
	require.Equal(t, []int{1}, report.Skipped)
	require.Equal(t, StopNone, report.Stop)
	require.Equal(t, -1, report.StopIndex)
	require.Equal(t, []string{"10.0.0.0/28", "10.0.0.16/28"}, subnetStrings(report.Records))
	require.Equal(t, 10, report.Records[1].RequiredHosts)
}

func TestPlanStopsWhenBaseIsFull(t *testing.T) {
	base, err := ParseNetwork("10.0.0.0/24")
	require.NoError(t, err)

	report := PlanWithReport(base, []int{200, 10, 10}, DefaultPlanSize)
	require.Equal(t, StopOutOfRange, report.Stop)
	require.Equal(t, 1, report.StopIndex)
	require.Equal(t, []string{"10.0.0.0/24"}, subnetStrings(report.Records))
}

func TestPlanStopsRatherThanSkipsAfterRangeFailure(t *testing.T) {
	base, err := ParseNetwork("10.0.0.0/24")
	require.NoError(t, err)

	// 300 hosts needs a /23 which cannot fit; the small one after it is never tried.
	report := PlanWithReport(base, []int{300, 2}, DefaultPlanSize)
	require.Empty(t, report.Records)
	require.Equal(t, StopOutOfRange, report.Stop)
	require.Equal(t, 0, report.StopIndex)
}

func TestPlanHaltsAtEndOfAddressSpace(t *testing.T) {
	base, err := ParseNetwork("255.255.255.0/24")
	require.NoError(t, err)

	report := PlanWithReport(base, []int{100, 100, 1}, DefaultPlanSize)
	require.Equal(t, StopHalted, report.Stop)
	require.Equal(t, 2, report.StopIndex)
	require.Equal(t, []string{"255.255.255.0/25", "255.255.255.128/25"}, subnetStrings(report.Records))
}

func TestPlanHonoursMaxCount(t *testing.T) {
	base, err := ParseNetwork("10.0.0.0/16")
	require.NoError(t, err)

	require.Len(t, Plan(base, []int{10, 10, 10, 10}, 2), 2)
	require.Empty(t, Plan(base, []int{10}, 0))
	require.Empty(t, Plan(base, nil, DefaultPlanSize))
}

func TestPlanRejectsInvalidBase(t *testing.T) {
	_, err := PlanString("10.0.0.0/40", []int{10}, DefaultPlanSize)
	require.ErrorIs(t, err, ErrInvalidNetwork)
}

func TestPlanReportsOutOfRangePrefixLength(t *testing.T) {
	for _, bits := range []int{-1, 33, 40} {
		report := PlanWithReport(Network{Addr: 0x0A000000, Bits: bits}, []int{10}, DefaultPlanSize)
		require.Empty(t, report.Records, "bits %d", bits)
		require.Equal(t, StopInvalidBase, report.Stop, "bits %d", bits)
		require.Equal(t, -1, report.StopIndex, "bits %d", bits)
		require.Empty(t, Plan(Network{Addr: 0x0A000000, Bits: bits}, []int{10}, DefaultPlanSize))
	}
	require.Equal(t, "invalid base", StopInvalidBase.String())
}

func TestPlanProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for range 2000 {
		base := Network{
			Addr: Address(0x0A000000 + rng.Uint32N(0xDF000000-0x0A000000+1)),
			Bits: 8 + rng.IntN(17),
		}
		hosts := make([]int, DefaultPlanSize)
		for i := range hosts {
			hosts[i] = 10 + rng.IntN(491)
		}

		records := Plan(base, hosts, DefaultPlanSize)
		require.LessOrEqual(t, len(records), DefaultPlanSize)

		masked := base.Masked()
		for i, r := range records {
			require.Equal(t, hosts[i], r.RequiredHosts, "records follow input order when nothing is skipped")
			require.GreaterOrEqual(t, r.Subnet.UsableHosts(), int64(r.RequiredHosts))
			if r.Subnet.Bits < 32 {
				tighter := Network{Addr: r.Subnet.Addr, Bits: r.Subnet.Bits + 1}
				require.Less(t, tighter.UsableHosts(), int64(r.RequiredHosts), r.Subnet.String())
			}
			require.Equal(t, r.Subnet.Masked(), r.Subnet, "subnet must start on its own boundary")
			require.True(t, masked.Contains(r.Subnet), "%s not inside %s", r.Subnet, masked)

			if i == 0 {
				require.Equal(t, masked.Addr, r.Subnet.Addr)
				continue
			}
			prev := records[i-1].Subnet
			require.Less(t, prev.Broadcast(), r.Subnet.Addr)
			gap := uint64(r.Subnet.Addr) - uint64(prev.Broadcast()) - 1
			require.Less(t, gap, r.Subnet.Size(), "gap larger than alignment padding")
		}
	}
}

func subnetStrings(records []SubnetRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Subnet.String())
	}
	return out
}
