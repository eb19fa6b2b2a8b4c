package jni

import "github.com/google/uuid"

// DefaultThreadName names attachments that do not set AttachArgs.Name:
// "gojni-" followed by eight hex digits.
func DefaultThreadName() string {
	return "gojni-" + uuid.NewString()[:8]
}
