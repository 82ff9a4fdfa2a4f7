package osil

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Results document (OSrL) layout. Only the sections this bridge consumes are
// modeled; unknown elements are ignored by the decoder.

type osrlDocument struct {
	XMLName      xml.Name         `xml:"osrl"`
	General      osrlGeneral      `xml:"general"`
	Optimization osrlOptimization `xml:"optimization"`
}

type osrlGeneral struct {
	Status  osrlStatus `xml:"generalStatus"`
	Message string     `xml:"message"`
}

type osrlStatus struct {
	Type        string `xml:"type,attr"`
	Description string `xml:"description,attr"`
}

type osrlOptimization struct {
	NumberOfSolutions   int            `xml:"numberOfSolutions,attr"`
	NumberOfVariables   int            `xml:"numberOfVariables,attr"`
	NumberOfConstraints int            `xml:"numberOfConstraints,attr"`
	Solutions           []osrlSolution `xml:"solution"`
}

type osrlSolution struct {
	Status      osrlStatus       `xml:"status"`
	Variables   osrlVariables    `xml:"variables"`
	Objectives  osrlObjectives   `xml:"objectives"`
	Constraints *osrlConstraints `xml:"constraints"`
}

type osrlVariables struct {
	Values osrlVarValues `xml:"values"`
}

type osrlVarValues struct {
	Var []osrlIdxValue `xml:"var"`
}

type osrlObjectives struct {
	Values osrlObjValues `xml:"values"`
}

type osrlObjValues struct {
	Obj []osrlIdxValue `xml:"obj"`
}

type osrlConstraints struct {
	DualValues osrlDualValues `xml:"dualValues"`
}

type osrlDualValues struct {
	Con []osrlIdxValue `xml:"con"`
}

type osrlIdxValue struct {
	Idx   int     `xml:"idx,attr"`
	Value float64 `xml:",chardata"`
}

// ParseResults reads and decodes the results document at path. The document
// must report the same variable and constraint counts as were sent; counts
// of solutions or objective values other than one are tolerated with a
// warning.
func ParseResults(path string, numCol, numRow int) (*Solution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "osil: unable to read results document")
	}
	var doc osrlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "osil: unable to parse results document")
	}
	return decodeResults(&doc, numCol, numRow)
}

func decodeResults(doc *osrlDocument, numCol, numRow int) (*Solution, error) {
	if doc.General.Status.Type == "error" {
		msg := doc.General.Message
		if msg == "" {
			msg = doc.General.Status.Description
		}
		return nil, errors.Errorf("osil: solver reported an error: %s", msg)
	}

	opt := &doc.Optimization
	if opt.NumberOfVariables != numCol {
		return nil, newDimensionError("ParseResults",
			"results report %d variables, sent %d", opt.NumberOfVariables, numCol)
	}
	if opt.NumberOfConstraints != numRow {
		return nil, newDimensionError("ParseResults",
			"results report %d constraints, sent %d", opt.NumberOfConstraints, numRow)
	}

	sol := &Solution{}
	if len(opt.Solutions) != 1 {
		sol.Warnings = append(sol.Warnings,
			fmt.Sprintf("results document contains %d solutions, expected 1", len(opt.Solutions)))
	}
	if len(opt.Solutions) == 0 {
		sol.Status = SolveError
		return sol, nil
	}
	first := &opt.Solutions[0]

	sol.RawStatus = first.Status.Type
	sol.Message = first.Status.Description
	outcome, warning, err := NormalizeStatus(first.Status.Type, first.Status.Description)
	if err != nil {
		return nil, err
	}
	sol.Status = outcome
	if warning != "" {
		sol.Warnings = append(sol.Warnings, warning)
	}

	sol.ColValues, err = DecodeSparse(numCol, 0.0, idxValueEntries(first.Variables.Values.Var))
	if err != nil {
		return nil, err
	}
	if first.Constraints != nil {
		sol.RowDuals, err = DecodeSparse(numRow, 0.0, idxValueEntries(first.Constraints.DualValues.Con))
		if err != nil {
			return nil, err
		}
	}

	objs := first.Objectives.Values.Obj
	if len(objs) != 1 {
		sol.Warnings = append(sol.Warnings,
			fmt.Sprintf("results document contains %d objective values, expected 1", len(objs)))
	}
	if len(objs) > 0 {
		sol.Objective = objs[0].Value
	}

	return sol, nil
}

func idxValueEntries(vals []osrlIdxValue) []SparseEntry {
	entries := make([]SparseEntry, len(vals))
	for i, v := range vals {
		entries[i] = SparseEntry{Idx: v.Idx, Val: v.Value}
	}
	return entries
}
