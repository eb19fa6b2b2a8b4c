package native

import (
	"fmt"
	"strconv"
	"strings"
)

// Table is one attached thread's view of the JNI function table (a
// JNIEnv*). Call invokes a single entry with the argument list that entry's
// calling convention expects and returns its raw result. Implementations do
// no validation; a Table must only be used on the OS thread it belongs to.
// Tables are comparable: two Tables for the same attached thread are equal.
//
// Arguments follow the C signatures minus the leading JNIEnv*, with these
// substitutions:
//
//	const char* (names, descriptors, messages)  StringValue
//	const jvalue* (Call*A, NewObjectA)           Vector of argument words
//	jsize start, jsize len, T* buf (regions)     IntValue(start), Vector(buf)
//	const jchar*, jsize (NewString)              Chars
//	jsize start, jsize len, jchar* buf           IntValue(start), Chars(buf)
//
// Region reads fill the supplied slice in place; its length is the region
// length.
type Table interface {
	Call(entry Entry, args ...Value) Value
}

// VM is the invoke interface of a running JVM (a JavaVM*). Unlike a Table it
// may be shared between threads; the runtime serializes attach and detach.
type VM interface {
	// GetEnv returns the calling thread's Table if it is already attached.
	GetEnv(version Version) (Table, Status)
	// AttachCurrentThread attaches the calling thread, as a daemon thread
	// if daemon is set.
	AttachCurrentThread(args AttachArgs, daemon bool) (Table, Status)
	DetachCurrentThread() Status
	DestroyJavaVM() Status
}

// AttachArgs mirrors JavaVMAttachArgs.
type AttachArgs struct {
	Version Version
	Name    string
	Group   Ref
}

// InitArgs mirrors JavaVMInitArgs.
type InitArgs struct {
	Version            Version
	Options            []string
	IgnoreUnrecognized bool
}

// Status is a JNI return code from the invoke interface and a few table
// entries (Throw, PushLocalFrame, EnsureLocalCapacity).
type Status int32

const (
	OK        Status = 0
	Err       Status = -1
	EDetached Status = -2
	EVersion  Status = -3
	ENoMem    Status = -4
	EExist    Status = -5
	EInval    Status = -6
)

func (s Status) String() string {
	switch s {
	case OK:
		return "JNI_OK"
	case Err:
		return "JNI_ERR"
	case EDetached:
		return "JNI_EDETACHED"
	case EVersion:
		return "JNI_EVERSION"
	case ENoMem:
		return "JNI_ENOMEM"
	case EExist:
		return "JNI_EEXIST"
	case EInval:
		return "JNI_EINVAL"
	}
	return fmt.Sprintf("Status(%d)", int32(s))
}

// Version is a JNI interface version as GetVersion reports it.
type Version int32

const (
	Version1_1 Version = 0x00010001
	Version1_2 Version = 0x00010002
	Version1_4 Version = 0x00010004
	Version1_6 Version = 0x00010006
	Version1_8 Version = 0x00010008
	Version9   Version = 0x00090000
	Version10  Version = 0x000a0000
)

// String renders the version the way Java names it: "1.8", "9", "10".
func (v Version) String() string {
	major, minor := int32(v)>>16, int32(v)&0xffff
	if major == 1 {
		return fmt.Sprintf("1.%d", minor)
	}
	if minor == 0 {
		return strconv.Itoa(int(major))
	}
	return fmt.Sprintf("%d.%d", major, minor)
}

// ParseVersion is the inverse of Version.String.
func ParseVersion(s string) (Version, error) {
	major, minor, hasMinor := strings.Cut(strings.TrimSpace(s), ".")
	maj, err := strconv.ParseUint(major, 10, 15)
	if err != nil {
		return 0, fmt.Errorf("invalid JNI version %q", s)
	}
	var mnr uint64
	if hasMinor {
		mnr, err = strconv.ParseUint(minor, 10, 16)
		if err != nil {
			return 0, fmt.Errorf("invalid JNI version %q", s)
		}
	}
	return Version(int32(maj)<<16 | int32(mnr)), nil
}
