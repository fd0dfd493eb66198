package services_test

import (
	"regexp"
	"testing"

	"hillbook/services"

	"github.com/stretchr/testify/assert"
)

func TestGenerateConfirmationCode(t *testing.T) {
	codePattern := regexp.MustCompile(`^[A-Z0-9]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := services.GenerateConfirmationCode()
		assert.Regexp(t, codePattern, code)
		seen[code] = true
	}

	// 1000 mã liên tiếp không được trùng nhau
	assert.Len(t, seen, 1000)
}
