package domain

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewReference_Format(t *testing.T) {
	ref := NewReference(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC))

	assert.Regexp(t, regexp.MustCompile(`^QR-20260815-[0-9A-F]{4}$`), ref)
}

func TestServiceDuration_IsValid(t *testing.T) {
	assert.True(t, DurationShort.IsValid())
	assert.True(t, DurationLong.IsValid())
	assert.False(t, ServiceDuration("medium").IsValid())
	assert.False(t, ServiceDuration("").IsValid())
}

func TestValidMeatSelection(t *testing.T) {
	assert.True(t, ValidMeatSelection([]string{"carne-asada", "pollo-asado", "al-pastor", "carnitas"}))

	// Wrong count
	assert.False(t, ValidMeatSelection([]string{"carne-asada", "pollo-asado", "al-pastor"}))
	// Duplicate
	assert.False(t, ValidMeatSelection([]string{"carne-asada", "carne-asada", "al-pastor", "carnitas"}))
	// Unknown option
	assert.False(t, ValidMeatSelection([]string{"carne-asada", "pollo-asado", "al-pastor", "tofu"}))
}

func TestIsAguaFrescaFlavor(t *testing.T) {
	assert.True(t, IsAguaFrescaFlavor("horchata"))
	assert.False(t, IsAguaFrescaFlavor("cola"))
}
