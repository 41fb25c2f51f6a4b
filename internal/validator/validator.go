package validator

import (
	"context"

	"svw.info/hanoi/internal/domain"
)

// LayoutValidator checks raw layouts before they become boards. Boards built
// through the domain API cannot break the size invariant, but layouts arrive
// untrusted from config files.
type LayoutValidator struct{}

func New() *LayoutValidator { return &LayoutValidator{} }

// Validate reports every disk resting on a smaller or equal disk, and every
// duplicated size within a peg run.
func (v *LayoutValidator) Validate(ctx context.Context, layout domain.Layout) (bool, []domain.Conflict, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	var conf []domain.Conflict
	for name, disks := range layout {
		for i := 1; i < len(disks); i++ {
			if disks[i] >= disks[i-1] {
				conf = append(conf, domain.Conflict{
					Peg:   name,
					Disk:  disks[i],
					Below: disks[i-1],
				})
			}
		}
	}
	return len(conf) == 0, conf, nil
}
