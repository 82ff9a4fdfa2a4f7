package osil

import (
	"encoding/xml"
	"io"
	"sort"
)

// Options document (OSoL) layout: warm-start values and solver options.

type osolDocument struct {
	XMLName       xml.Name           `xml:"osol"`
	InitialValues *osolInitialValues `xml:"optimization>variables>initialVariableValues"`
	SolverOptions *osolSolverOptions `xml:"optimization>solverOptions"`
}

type osolInitialValues struct {
	NumberOfVar int       `xml:"numberOfVar,attr"`
	Var         []osolVar `xml:"var"`
}

type osolVar struct {
	Idx   int    `xml:"idx,attr"`
	Value string `xml:"value,attr"`
}

type osolSolverOptions struct {
	NumberOfSolverOptions int                `xml:"numberOfSolverOptions,attr"`
	SolverOption          []osolSolverOption `xml:"solverOption"`
}

type osolSolverOption struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// buildOptions assembles the options document from one solve configuration.
// Warm-start values are written sparsely, zero entries omitted; solver
// options are written in name order.
func buildOptions(cfg *solveConfig, numCol int) (*osolDocument, error) {
	doc := &osolDocument{}

	if cfg.initial != nil {
		if len(cfg.initial) != numCol {
			return nil, newDimensionError("buildOptions",
				"inconsistent initial values length %d, want %d", len(cfg.initial), numCol)
		}
		iv := &osolInitialValues{}
		for _, e := range EncodeSparse(cfg.initial) {
			iv.Var = append(iv.Var, osolVar{Idx: e.Idx, Value: formatFloat(e.Val)})
		}
		iv.NumberOfVar = len(iv.Var)
		doc.InitialValues = iv
	}

	if len(cfg.options) > 0 {
		names := make([]string, 0, len(cfg.options))
		for name := range cfg.options {
			names = append(names, name)
		}
		sort.Strings(names)

		so := &osolSolverOptions{NumberOfSolverOptions: len(names)}
		for _, name := range names {
			so.SolverOption = append(so.SolverOption, osolSolverOption{Name: name, Value: cfg.options[name]})
		}
		doc.SolverOptions = so
	}

	return doc, nil
}

func writeOptions(w io.Writer, cfg *solveConfig, numCol int) error {
	doc, err := buildOptions(cfg, numCol)
	if err != nil {
		return err
	}
	return writeDocument(w, doc)
}
