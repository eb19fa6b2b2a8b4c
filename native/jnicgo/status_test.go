package jnicgo

import (
	"errors"
	"testing"

	"github.com/chazu/gojni/jni"
	"github.com/chazu/gojni/native"
)

func TestCreateError(t *testing.T) {
	tests := []struct {
		st   native.Status
		want error
	}{
		{native.EExist, jni.ErrVMExists},
		{native.ENoMem, jni.ErrOutOfMemory},
		{native.EVersion, jni.ErrUnsupportedVersion},
		{native.EInval, jni.ErrInvalidArguments},
	}
	for _, tt := range tests {
		err := createError(tt.st)
		if !errors.Is(err, tt.want) {
			t.Errorf("createError(%s) = %v, want %v", tt.st, err, tt.want)
		}
		var se *jni.StatusError
		if !errors.As(err, &se) || se.Op != "JNI_CreateJavaVM" {
			t.Errorf("createError(%s) = %#v, want a JNI_CreateJavaVM *jni.StatusError", tt.st, err)
		}
	}
	if err := createError(native.OK); err != nil {
		t.Errorf("createError(OK) = %v", err)
	}
	if err := createdError(native.Err); err == nil || errors.Is(err, jni.ErrVMExists) {
		t.Errorf("createdError(Err) = %v", err)
	}
}
