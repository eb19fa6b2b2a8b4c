//go:build !(cgo && jni && (386 || amd64 || arm || arm64 || loong64 || ppc64le || riscv64))

package jnicgo

import (
	"unsafe"

	"github.com/chazu/gojni/native"
)

// VM is a JavaVM*. Without the cgo backend no VM can be obtained.
type VM struct{}

func Create(args native.InitArgs) (*VM, error) {
	log.Debugf("Create called without the cgo backend")
	return nil, ErrUnavailable
}

func Created() ([]*VM, error) { return nil, ErrUnavailable }

func (*VM) GetEnv(native.Version) (native.Table, native.Status) { return nil, native.Err }

func (*VM) AttachCurrentThread(native.AttachArgs, bool) (native.Table, native.Status) {
	return nil, native.Err
}

func (*VM) DetachCurrentThread() native.Status { return native.Err }

func (*VM) DestroyJavaVM() native.Status { return native.Err }

func Table(unsafe.Pointer) native.Table { panic(ErrUnavailable) }
