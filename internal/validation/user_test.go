package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHandle(t *testing.T) {
	valid := []string{"abc", "Alice_99", "a_b_c", strings.Repeat("x", 30)}
	for _, h := range valid {
		assert.NoError(t, ValidateHandle(h), h)
	}

	invalid := []string{"", "ab", "has space", "dash-ed", "émile", strings.Repeat("x", 31)}
	for _, h := range invalid {
		assert.Error(t, ValidateHandle(h), h)
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("a@b.co"))
	assert.NoError(t, ValidateEmail("first.last+tag@example.org"))

	for _, e := range []string{"", "no-at-sign", "a@b", "a b@c.de", "@missing.local"} {
		assert.Error(t, ValidateEmail(e), e)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("password123"))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(strings.Repeat("p", 129)))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Alice"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("n", 101)))
}

func TestValidateBio(t *testing.T) {
	assert.NoError(t, ValidateBio(""))
	assert.NoError(t, ValidateBio(strings.Repeat("b", 500)))
	assert.Error(t, ValidateBio(strings.Repeat("b", 501)))
}

func TestValidateTags(t *testing.T) {
	assert.NoError(t, ValidateTags(nil))
	assert.NoError(t, ValidateTags([]string{"go", "databases"}))

	t.Run("too many", func(t *testing.T) {
		tags := make([]string, 21)
		for i := range tags {
			tags[i] = "t"
		}
		assert.Error(t, ValidateTags(tags))
	})

	t.Run("empty tag", func(t *testing.T) {
		assert.Error(t, ValidateTags([]string{"go", "  "}))
	})

	t.Run("comma in tag", func(t *testing.T) {
		assert.Error(t, ValidateTags([]string{"go,db"}))
	})

	t.Run("overlong tag", func(t *testing.T) {
		assert.Error(t, ValidateTags([]string{strings.Repeat("x", 65)}))
	})
}
