package jnicgo

import (
	"github.com/chazu/gojni/jni"
	"github.com/chazu/gojni/native"
)

// Invocation API results are reported as *jni.StatusError so callers can
// match them against the jni sentinels.

func createError(st native.Status) error { return jni.CheckStatus("JNI_CreateJavaVM", st) }

func createdError(st native.Status) error { return jni.CheckStatus("JNI_GetCreatedJavaVMs", st) }
