package checklist

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chatcont39-glitch/educheck/internal/models"
)

// MinJustificationLength is the number of characters a justification must
// strictly exceed when a discrepancy exists. Exactly this many characters
// does not satisfy the requirement. Counted in runes, not bytes, so accented
// input measures the way it reads.
const MinJustificationLength = 10

// HasDiscrepancy reports whether any item's counted quantity differs from its
// expected baseline quantity.
func HasDiscrepancy(items []models.InventoryItem) bool {
	for _, item := range items {
		if item.CurrentQuantity != item.ExpectedQuantity {
			return true
		}
	}
	return false
}

// IsSubmittable reports whether a submission built from the given fields may
// proceed: teacher name and signature are required, and a discrepancy
// additionally requires a justification longer than MinJustificationLength.
func IsSubmittable(teacherName, signature string, hasDiscrepancy bool, justification string) bool {
	if teacherName == "" || signature == "" {
		return false
	}
	return !hasDiscrepancy || utf8.RuneCountInString(justification) > MinJustificationLength
}

// ClampQuantity floors a quantity at zero. There is no ceiling.
func ClampQuantity(qty int) int {
	if qty < 0 {
		return 0
	}
	return qty
}

// ParseQuantity converts manual quantity input to an integer. Non-numeric
// input counts as zero rather than failing, and the result is clamped at
// zero like every other quantity mutation.
func ParseQuantity(raw string) int {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return ClampQuantity(qty)
}
