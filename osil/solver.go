package osil

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// solve runs the full bridge: write the problem and options documents, invoke
// the solver service once, and decode the results document. Any failure
// aborts the attempt; there is no retry.
func solve(m *Model, solver string, cfg *solveConfig) (*Solution, error) {
	numCol := m.NumVars()
	numRow := m.NumConstraints()

	dir := cfg.workDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "osil-")
		if err != nil {
			return nil, errors.Wrap(err, "osil: unable to create work directory")
		}
		if !cfg.keepFiles {
			defer os.RemoveAll(tmp)
		}
		dir = tmp
	}

	problemPath := filepath.Join(dir, "problem.osil")
	optionsPath := filepath.Join(dir, "options.osol")
	resultsPath := filepath.Join(dir, "results.osrl")

	var problem bytes.Buffer
	if err := m.WriteProblem(&problem); err != nil {
		return nil, err
	}
	if err := os.WriteFile(problemPath, problem.Bytes(), 0o644); err != nil {
		return nil, errors.Wrap(err, "osil: unable to write problem document")
	}

	var options bytes.Buffer
	if err := writeOptions(&options, cfg, numCol); err != nil {
		return nil, err
	}
	if err := os.WriteFile(optionsPath, options.Bytes(), 0o644); err != nil {
		return nil, errors.Wrap(err, "osil: unable to write options document")
	}

	if err := runSolver(cfg.solverPath, solver, problemPath, optionsPath, resultsPath); err != nil {
		return nil, err
	}

	return ParseResults(resultsPath, numCol, numRow)
}

// runSolver invokes the solver service subprocess on the three document
// paths. The call blocks until the process exits; nonzero exit is fatal.
func runSolver(bin, solver, problemPath, optionsPath, resultsPath string) error {
	args := []string{"-osil", problemPath, "-osol", optionsPath, "-osrl", resultsPath}
	if solver != "" {
		args = append(args, "-solver", solver)
	}
	out, err := exec.Command(bin, args...).CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "osil: solver command %s failed: %s", bin, tail(out, 512))
	}
	return nil
}

// tail returns the last at most n bytes of solver output for error context.
func tail(out []byte, n int) string {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) > n {
		trimmed = trimmed[len(trimmed)-n:]
	}
	return string(trimmed)
}
