package subnet

import (
	"fmt"

	cidrman "github.com/EvilSuperstars/go-cidrman"
)

// Coverage merges the planned subnets into the fewest CIDR blocks that span
// exactly the same addresses.
func Coverage(records []SubnetRecord) ([]string, error) {
	if len(records) == 0 {
		return nil, nil
	}

	cidrs := make([]string, 0, len(records))
	for _, r := range records {
		cidrs = append(cidrs, r.Subnet.String())
	}

	merged, err := cidrman.MergeCIDRs(cidrs)
	if err != nil {
		return nil, fmt.Errorf("merge planned subnets: %w", err)
	}
	return merged, nil
}
