package interp_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestClassHierarchySnapshot exercises a small but representative
// Willow program touching inheritance, closures and control flow in
// one run, asserting its printed output against a snapshot rather than
// a hand-maintained literal (grounded on the gkampitakis/go-snaps usage
// in _examples/CWBudde-go-dws/internal/interp/fixture_test.go).
func TestClassHierarchySnapshot(t *testing.T) {
	out, d := run(t, `
		class Shape {
			init(name) { this.name = name; }
			describe() { return "a " + this.name; }
		}
		class Circle < Shape {
			init(radius) {
				super.init("circle");
				this.radius = radius;
			}
			area() { return 3.14159 * this.radius * this.radius; }
		}

		var shapes = nil;
		fun makeList() {
			var c = Circle(2);
			return c;
		}

		var c = makeList();
		print c.describe();
		print c.area();

		for (var i = 0; i < 3; i = i + 1) {
			if (i == 1) continue;
			print i;
		}
	`)
	if d.HadRuntimeError() {
		t.Fatalf("unexpected runtime error")
	}
	snaps.MatchSnapshot(t, out)
}
