// jnicall starts a JVM from gojni.toml and prints Java system properties.
//
// Usage:
//
//	jnicall [flags] [property ...]
//
// With no properties, java.version, java.vendor and java.class.path are
// printed. Requires a binary built with -tags jni.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"github.com/chazu/gojni/config"
	"github.com/chazu/gojni/jni"
	"github.com/chazu/gojni/native/jnicgo"
)

var log = commonlog.GetLogger("gojni.jnicall")

// System wraps java.lang.System.
type System struct {
	jni.Object
}

func (*System) Signature() string { return "Ljava/lang/System;" }

// getProperty returns System.getProperty(key); ok is false for an unset
// property.
func getProperty(tok jni.NoException, key string) (value string, ok bool, _ jni.NoException, err error) {
	k, tok, err := jni.NewString(tok, key)
	if err != nil {
		return "", false, tok, err
	}
	defer k.Delete()

	v, tok, err := jni.CallStaticMethod1[*System, *jni.String](tok, "getProperty", k)
	if err != nil || v == nil {
		return "", false, tok, err
	}
	defer v.Delete()
	return v.Value(tok), true, tok, nil
}

func main() {
	configDir := flag.String("config", ".", "Directory to search for gojni.toml")
	verbose := flag.Int("v", 0, "Log verbosity")
	flag.Parse()

	cfg, err := config.FindAndLoad(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", config.FileName, err)
		os.Exit(1)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	cfg.ConfigureLogging(*verbose)

	props := flag.Args()
	if len(props) == 0 {
		props = []string{"java.version", "java.vendor", "java.class.path"}
	}

	if err := run(cfg, props); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, props []string) error {
	initArgs, err := cfg.InitArgs()
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	raw, err := jnicgo.Create(initArgs)
	if err != nil {
		return err
	}
	vm := jni.NewVM(raw, opts)

	err = vm.WithAttached(cfg.AttachArgs(), func(tok jni.NoException) error {
		fmt.Printf("JNI version %s\n", jni.GetVersion(tok))
		for _, p := range props {
			var (
				value string
				ok    bool
				err   error
			)
			value, ok, tok, err = getProperty(tok, p)
			if err != nil {
				return fmt.Errorf("getProperty(%q): %w", p, err)
			}
			if !ok {
				fmt.Printf("%s is not set\n", p)
				continue
			}
			fmt.Printf("%s=%s\n", p, value)
		}
		return nil
	})

	var captured *jni.CapturedError
	if errors.As(err, &captured) {
		log.Errorf("Java exception %s", captured.Class)
	}
	if derr := vm.Destroy(); derr != nil {
		log.Warningf("destroy: %v", derr)
	}
	return err
}
