package jni

import "github.com/tliron/commonlog"

var log = commonlog.GetLogger("gojni.jni")
