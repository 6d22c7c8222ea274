package genschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFormatDetectorEmail(t *testing.T) {
	d := DefaultFormatDetector()
	assert.Equal(t, "email", d.Detect("string", "a.b+c@example.co"))
}

func TestDefaultFormatDetectorUUID(t *testing.T) {
	d := DefaultFormatDetector()
	assert.Equal(t, "uuid", d.Detect("string", "123e4567-e89b-12d3-a456-426614174000"))
}

func TestDefaultFormatDetectorDateBeforeDateTime(t *testing.T) {
	d := DefaultFormatDetector()
	assert.Equal(t, "date", d.Detect("string", "2024-01-02"))
	assert.Equal(t, "date-time", d.Detect("string", "2024-01-02T03:04:05Z"))
}

func TestDefaultFormatDetectorURI(t *testing.T) {
	d := DefaultFormatDetector()
	assert.Equal(t, "uri", d.Detect("string", "https://example.com/path"))
}

func TestDefaultFormatDetectorIPv4(t *testing.T) {
	d := DefaultFormatDetector()
	assert.Equal(t, "ipv4", d.Detect("string", "192.168.1.1"))
}

func TestDefaultFormatDetectorNoMatch(t *testing.T) {
	d := DefaultFormatDetector()
	assert.Equal(t, "", d.Detect("string", "just some text"))
}

func TestFormatDetectorFirstMatchWins(t *testing.T) {
	d := NewFormatDetector().
		AddPattern("string", `^a.*$`, "starts-with-a").
		AddPattern("string", `^ab$`, "exact-ab")
	assert.Equal(t, "starts-with-a", d.Detect("string", "ab"))
}

func TestFormatDetectorRequiresFullMatch(t *testing.T) {
	d := NewFormatDetector().AddPattern("string", `a`, "has-an-a")
	assert.Equal(t, "has-an-a", d.Detect("string", "a"))
	assert.Equal(t, "", d.Detect("string", "ab"), "partial match must not count as a full match")
}
