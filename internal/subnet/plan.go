package subnet

// DefaultPlanSize is the number of child subnets a plan asks for by default.
const DefaultPlanSize = 5

// SubnetRecord is one planned child subnet and the host count it was sized for.
type SubnetRecord struct {
	Subnet        Network
	RequiredHosts int
}

// StopReason says why planning ended before the requirements ran out.
type StopReason int

const (
	StopNone StopReason = iota
	// StopHalted means the aligned candidate could not be built as a network.
	StopHalted
	// StopOutOfRange means the candidate left the base network.
	StopOutOfRange
	// StopInvalidBase means the base prefix length is outside [0, 32].
	StopInvalidBase
)

func (r StopReason) String() string {
	switch r {
	case StopHalted:
		return "halted"
	case StopOutOfRange:
		return "out of range"
	case StopInvalidBase:
		return "invalid base"
	default:
		return "none"
	}
}

// PlanReport is the planned records plus why entries are missing.
type PlanReport struct {
	Records []SubnetRecord
	// Skipped holds indexes of requirements no prefix could hold.
	Skipped []int
	Stop    StopReason
	// StopIndex is the index of the requirement that stopped planning, or -1.
	StopIndex int
}

type outcome int

const (
	outcomeAccepted outcome = iota
	outcomeSkipped
	outcomeHalted
	outcomeOutOfRange
)

// PrefixForHosts returns the longest prefix whose usable capacity
// 2^(32-p)-2 is at least hosts. Zero hosts gives /31 and negative counts
// give /32. ok is false when not even a /1 is large enough.
func PrefixForHosts(hosts int) (bits int, ok bool) {
	for p := 32; p >= 1; p-- {
		if int64(1)<<(32-p)-2 >= int64(hosts) {
			return p, true
		}
	}
	return 0, false
}

func alignUp(cursor, size uint64) uint64 {
	return cursor + (size-cursor%size)%size
}

func attempt(base Network, cursor uint64, hosts int) (Network, outcome) {
	bits, ok := PrefixForHosts(hosts)
	if !ok {
		return Network{}, outcomeSkipped
	}

	aligned := alignUp(cursor, uint64(1)<<(32-bits))
	candidate, err := newStrictNetwork(aligned, bits)
	if err != nil || uint64(candidate.Addr) != aligned {
		return Network{}, outcomeHalted
	}

	if !base.Contains(candidate) {
		return candidate, outcomeOutOfRange
	}
	return candidate, outcomeAccepted
}

// Plan packs child subnets for hosts into base, first fit, each aligned to
// its own size. See PlanWithReport.
func Plan(base Network, hosts []int, maxCount int) []SubnetRecord {
	return PlanWithReport(base, hosts, maxCount).Records
}

// PlanWithReport walks hosts in order until maxCount subnets are accepted.
// A requirement too large for any prefix is skipped and planning goes on; a
// candidate that cannot be built or does not fit in base ends planning with
// the records accepted so far. A base with a prefix length outside [0, 32]
// plans nothing and reports StopInvalidBase.
func PlanWithReport(base Network, hosts []int, maxCount int) PlanReport {
	report := PlanReport{StopIndex: -1}
	if base.Bits < 0 || base.Bits > 32 {
		report.Stop = StopInvalidBase
		return report
	}
	if maxCount <= 0 {
		return report
	}

	base = base.Masked()
	cursor := uint64(base.Addr)
	for i, h := range hosts {
		if len(report.Records) >= maxCount {
			break
		}

		candidate, out := attempt(base, cursor, h)
		switch out {
		case outcomeSkipped:
			report.Skipped = append(report.Skipped, i)
			continue
		case outcomeHalted:
			report.Stop, report.StopIndex = StopHalted, i
			return report
		case outcomeOutOfRange:
			report.Stop, report.StopIndex = StopOutOfRange, i
			return report
		case outcomeAccepted:
			report.Records = append(report.Records, SubnetRecord{Subnet: candidate, RequiredHosts: h})
			cursor = uint64(candidate.Broadcast()) + 1
		}
	}
	return report
}

// PlanString parses base and plans hosts into it.
func PlanString(base string, hosts []int, maxCount int) ([]SubnetRecord, error) {
	n, err := ParseNetwork(base)
	if err != nil {
		return nil, err
	}
	return Plan(n, hosts, maxCount), nil
}
