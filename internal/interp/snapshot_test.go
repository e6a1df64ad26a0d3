package interp_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestScriptOutputSnapshots exercises a handful of representative
// programs end to end and snapshots their printed output with go-snaps,
// the way the teacher's fixture_test.go snapshots DWScript program
// output (§8 Testable Properties: determinism — the same program
// always produces the same output).
func TestScriptOutputSnapshots(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"fizzbuzz", `for i in range(1, 16):
    if i % 15 == 0:
        print "FizzBuzz"
    elif i % 3 == 0:
        print "Fizz"
    elif i % 5 == 0:
        print "Buzz"
    else:
        print i
`},
		{"fibonacci", `def fib(n):
    if n < 2:
        return n
    return fib(n - 1) + fib(n - 2)

for i in range(10):
    print fib(i)
`},
		{"dict_sorted_keys", `d = {"a": 1, "b": 2}
keys = sorted(d)
print keys
out = []
for k in keys:
    out = out + [d[k]]
print out
`},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got := runScript(t, c.src)
			snaps.MatchSnapshot(t, c.name, got)
		})
	}
}
