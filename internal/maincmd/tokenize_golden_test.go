package maincmd_test

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/willowlang/willow/internal/filetest"
	"github.com/willowlang/willow/internal/maincmd"
)

var testUpdateTokenizeTests = flag.Bool("test.update-tokenize-tests", false, "If set, replace expected tokenize test results with actual results.")

// TestTokenizeGolden exercises Cmd.Tokenize end to end against the
// golden transcripts under testdata, the way the scanner's token
// stream is meant to be read by a human debugging it.
func TestTokenizeGolden(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".wlw") {
		t.Run(fi.Name(), func(t *testing.T) {
			var out, errOut bytes.Buffer
			stdio := mainer.Stdio{Stdout: &out, Stderr: &errOut}

			var c maincmd.Cmd
			_ = c.Tokenize(context.Background(), stdio, []string{filepath.Join(srcDir, fi.Name())})

			filetest.DiffOutput(t, fi, out.String(), resultDir, testUpdateTokenizeTests)
		})
	}
}
