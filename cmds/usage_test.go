package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.Define("-n", Func(func(int) {}).Desc("N"))

	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	out := buf.String()

	for _, expected := range []string{
		"-h | help | -help | --help\tprint this usage\n",
		"-n <int>\tN\n",
		"foo\tFOO\n",
		"  bar\tBAR\n",
		"  baz\tBAZ\n",
		"    qux\tQUX\n",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("%q not in %s", expected, out)
		}
	}
	if strings.Index(out, "-h") > strings.Index(out, "foo") {
		t.Fatalf("not sorted: %s", out)
	}
}
