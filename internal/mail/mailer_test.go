package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildOTPMessage(t *testing.T) {
	msg := string(buildOTPMessage("no-reply@publishine.local", "a@x.com", "123456"))

	assert.Contains(t, msg, "To: a@x.com\r\n")
	assert.Contains(t, msg, "Subject: Your OTP Code for Publishine Account Verification\r\n")
	assert.Contains(t, msg, ">123456<")
	assert.Contains(t, msg, "valid for <strong>10 minutes</strong>")

	// headers and body separated by a blank line
	assert.True(t, strings.Contains(msg, "\r\n\r\n"))
}
