package view

import (
	"github.com/michaelscutari/lsview/internal/colorscale"
)

// DetailsOptions configures the details (long) and tree views.
type DetailsOptions struct {
	// Table is nil for a tree without --long.
	Table *TableOptions

	// Header prints a row of column names above the table.
	Header bool

	// Xattr lists extended attributes under each entry.
	Xattr bool

	// SecAttr shows the security context of each entry.
	SecAttr bool

	// Mounts shows mount details for mount points.
	Mounts bool

	ColorScale colorscale.Options
}
