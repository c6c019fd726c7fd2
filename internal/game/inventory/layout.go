package inventory

import (
	"fmt"
	"strings"
)

// Layout fixes the dimensions of the three collections.
type Layout struct {
	EquippedSize    int
	InventorySize   int
	RowWidth        int
	WardrobeMinRows int
}

// DefaultLayout returns the reference dimensions: 10 equipped, 20 inventory,
// and a wardrobe of rows of 4 with at least 3 rows.
func DefaultLayout() Layout {
	return Layout{
		EquippedSize:    10,
		InventorySize:   20,
		RowWidth:        4,
		WardrobeMinRows: 3,
	}
}

// WardrobeMinSize returns the smallest permitted wardrobe length.
func (l Layout) WardrobeMinSize() int {
	return l.RowWidth * l.WardrobeMinRows
}

// Validate checks that every dimension is usable.
//
// Postcondition: returns nil iff all sizes are positive.
func (l Layout) Validate() error {
	var errs []string
	if l.EquippedSize < 1 {
		errs = append(errs, fmt.Sprintf("equipped size must be >= 1, got %d", l.EquippedSize))
	}
	if l.InventorySize < 1 {
		errs = append(errs, fmt.Sprintf("inventory size must be >= 1, got %d", l.InventorySize))
	}
	if l.RowWidth < 1 {
		errs = append(errs, fmt.Sprintf("row width must be >= 1, got %d", l.RowWidth))
	}
	if l.WardrobeMinRows < 1 {
		errs = append(errs, fmt.Sprintf("wardrobe min rows must be >= 1, got %d", l.WardrobeMinRows))
	}
	if len(errs) > 0 {
		return fmt.Errorf("inventory: invalid layout: %s", strings.Join(errs, "; "))
	}
	return nil
}

func roundUpToRow(n, width int) int {
	if n <= 0 {
		return 0
	}
	return ((n + width - 1) / width) * width
}
