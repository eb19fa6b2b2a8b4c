// Package jnicgo is the cgo backend of package native: it implements
// native.VM and native.Table over a real JavaVM* and JNIEnv*.
//
// The backend is built only with the jni build tag and cgo enabled:
//
//	CGO_CFLAGS="-I$JAVA_HOME/include -I$JAVA_HOME/include/linux" \
//	CGO_LDFLAGS="-L$JAVA_HOME/lib/server" \
//	go build -tags jni ./...
//
// Without the tag, Create and Created return ErrUnavailable so that
// programs depending on this package still build.
package jnicgo

import (
	"errors"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("gojni.jnicgo")

// ErrUnavailable is returned when the package was built without the cgo
// backend.
var ErrUnavailable = errors.New("jnicgo: built without cgo JNI support (build with -tags jni)")
