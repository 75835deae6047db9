package twcss

import (
	"fmt"

	"github.com/yacobolo/twcss/internal/csstext"
)

// Verify re-reads CSS text and reports unbalanced blocks, empty blocks and
// malformed declarations. Output of Stylesheet.CSS always verifies.
func Verify(css string) error {
	if err := csstext.Verify(css); err != nil {
		return fmt.Errorf("verify css: %w", err)
	}
	return nil
}
