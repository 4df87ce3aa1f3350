//go:build js
// +build js

package debug

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
)

var sink logSink = consoleSink{}

type consoleSink struct{}

func (consoleSink) log(args ...interface{}) {
	js.Global.Get("console").Call("log", args...)
}

func (consoleSink) logf(format string, args ...interface{}) {
	js.Global.Get("console").Call("log", fmt.Sprintf(format, args...))
}

func (consoleSink) warn(args ...interface{}) {
	js.Global.Get("console").Call("warn", args...)
}

func (consoleSink) error(args ...interface{}) {
	js.Global.Get("console").Call("error", args...)
}
