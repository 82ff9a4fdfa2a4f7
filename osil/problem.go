package osil

import (
	"encoding/xml"
	"io"
	"math"

	"github.com/pkg/errors"
)

// Problem document (OSiL) layout. Attribute and list values are formatted as
// strings so the writer controls the wire representation exactly; the wire
// is zero-based throughout.

type osilDocument struct {
	XMLName     xml.Name            `xml:"osil"`
	Description string              `xml:"instanceHeader>description"`
	Variables   osilVariables       `xml:"instanceData>variables"`
	Objectives  osilObjectives      `xml:"instanceData>objectives"`
	Constraints osilConstraints     `xml:"instanceData>constraints"`
	LinearCoefs *osilLinearCoefs    `xml:"instanceData>linearConstraintCoefficients"`
	Nonlinear   *osilNonlinearExprs `xml:"instanceData>nonlinearExpressions"`
}

type osilVariables struct {
	NumberOfVariables int       `xml:"numberOfVariables,attr"`
	Var               []osilVar `xml:"var"`
}

type osilVar struct {
	LB   string `xml:"lb,attr,omitempty"`
	UB   string `xml:"ub,attr,omitempty"`
	Type string `xml:"type,attr,omitempty"`
}

type osilObjectives struct {
	NumberOfObjectives int             `xml:"numberOfObjectives,attr"`
	Obj                []osilObjective `xml:"obj"`
}

type osilObjective struct {
	MaxOrMin        string        `xml:"maxOrMin,attr"`
	Constant        string        `xml:"constant,attr,omitempty"`
	NumberOfObjCoef int           `xml:"numberOfObjCoef,attr"`
	Coef            []osilObjCoef `xml:"coef"`
}

type osilObjCoef struct {
	Idx   int    `xml:"idx,attr"`
	Value string `xml:",chardata"`
}

type osilConstraints struct {
	NumberOfConstraints int       `xml:"numberOfConstraints,attr"`
	Con                 []osilCon `xml:"con"`
}

type osilCon struct {
	LB string `xml:"lb,attr,omitempty"`
	UB string `xml:"ub,attr,omitempty"`
}

// osilLinearCoefs is the compressed row form of the constraint matrix:
// parallel start-offset, column-index and value lists.
type osilLinearCoefs struct {
	NumberOfValues int         `xml:"numberOfValues,attr"`
	Start          osilIntList `xml:"start"`
	ColIdx         osilIntList `xml:"colIdx"`
	Value          osilValList `xml:"value"`
}

type osilIntList struct {
	El []int `xml:"el"`
}

type osilValList struct {
	El []string `xml:"el"`
}

type osilNonlinearExprs struct {
	NumberOfNonlinearExpressions int      `xml:"numberOfNonlinearExpressions,attr"`
	Nl                           []osilNl `xml:"nl"`
}

// osilNl carries one nonlinear expression keyed by row index; index -1 is
// the sentinel for the objective.
type osilNl struct {
	Idx  int   `xml:"idx,attr"`
	Root *Node `xml:"nl-root"`
}

// WriteProblem validates the model and writes its problem document to w.
func (m *Model) WriteProblem(w io.Writer) error {
	numCol := m.NumVars()
	colLower, err := expandSlice("WriteProblem", numCol, m.ColLower, 0.0)
	if err != nil {
		return err
	}
	colUpper, err := expandSlice("WriteProblem", numCol, m.ColUpper, math.Inf(1))
	if err != nil {
		return err
	}
	doc, err := buildProblem(m, numCol, colLower, colUpper)
	if err != nil {
		return err
	}
	return writeDocument(w, doc)
}

// buildProblem assembles the problem document. Linear parts of the objective
// and of every row go through one shared accumulator, drained and cleared
// between passes.
func buildProblem(m *Model, numCol int, colLower, colUpper []float64) (*osilDocument, error) {
	doc := &osilDocument{Description: m.Description}

	doc.Variables.NumberOfVariables = numCol
	if len(m.VarTypes) > 0 && len(m.VarTypes) != numCol {
		return nil, newDimensionError("buildProblem",
			"inconsistent VarTypes length %d, want %d", len(m.VarTypes), numCol)
	}
	for i := 0; i < numCol; i++ {
		v := osilVar{}
		if colLower[i] != 0.0 {
			v.LB = formatBound(colLower[i])
		}
		if !math.IsInf(colUpper[i], 1) {
			v.UB = formatBound(colUpper[i])
		}
		if len(m.VarTypes) > 0 {
			code, err := m.VarTypes[i].Code()
			if err != nil {
				return nil, err
			}
			if code != "C" {
				v.Type = code
			}
		}
		doc.Variables.Var = append(doc.Variables.Var, v)
	}

	acc := NewLinearAccumulator(numCol)

	obj := osilObjective{MaxOrMin: "min"}
	if m.Maximize {
		obj.MaxOrMin = "max"
	}
	constant := m.Offset
	for _, term := range m.Objective {
		c, err := acc.Add(term)
		if err != nil {
			return nil, errors.Wrap(err, "objective")
		}
		constant += c
	}
	for _, e := range acc.Drain() {
		obj.Coef = append(obj.Coef, osilObjCoef{Idx: e.Idx, Value: formatFloat(e.Val)})
	}
	obj.NumberOfObjCoef = len(obj.Coef)
	if constant != 0.0 {
		obj.Constant = formatFloat(constant)
	}
	doc.Objectives.NumberOfObjectives = 1
	doc.Objectives.Obj = []osilObjective{obj}

	doc.Constraints.NumberOfConstraints = len(m.Rows)
	coefs := &osilLinearCoefs{}
	coefs.Start.El = append(coefs.Start.El, 0)
	for i, row := range m.Rows {
		rowConstant := 0.0
		for _, term := range row.Linear {
			c, err := acc.Add(term)
			if err != nil {
				return nil, errors.Wrapf(err, "constraint %d", i)
			}
			rowConstant += c
		}
		for _, e := range acc.Drain() {
			coefs.ColIdx.El = append(coefs.ColIdx.El, e.Idx)
			coefs.Value.El = append(coefs.Value.El, formatFloat(e.Val))
		}
		coefs.Start.El = append(coefs.Start.El, len(coefs.ColIdx.El))

		// A bare-constant contribution shifts the bounds.
		con := osilCon{}
		if !math.IsInf(row.Lower, -1) {
			con.LB = formatBound(row.Lower - rowConstant)
		}
		if !math.IsInf(row.Upper, 1) {
			con.UB = formatBound(row.Upper - rowConstant)
		}
		doc.Constraints.Con = append(doc.Constraints.Con, con)
	}
	coefs.NumberOfValues = len(coefs.ColIdx.El)
	if coefs.NumberOfValues > 0 {
		doc.LinearCoefs = coefs
	}

	nl := &osilNonlinearExprs{}
	if m.ObjNonlinear != nil {
		root, err := Compile(m.ObjNonlinear, nil)
		if err != nil {
			return nil, errors.Wrap(err, "objective")
		}
		nl.Nl = append(nl.Nl, osilNl{Idx: -1, Root: root})
	}
	for i, row := range m.Rows {
		if row.Nonlinear == nil {
			continue
		}
		root, err := Compile(row.Nonlinear, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "constraint %d", i)
		}
		nl.Nl = append(nl.Nl, osilNl{Idx: i, Root: root})
	}
	nl.NumberOfNonlinearExpressions = len(nl.Nl)
	if nl.NumberOfNonlinearExpressions > 0 {
		doc.Nonlinear = nl
	}

	return doc, nil
}

// formatBound renders a bound attribute, using the INF spellings for
// infinite values.
func formatBound(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "INF"
	case math.IsInf(v, -1):
		return "-INF"
	default:
		return formatFloat(v)
	}
}

// writeDocument writes doc as an XML file with the standard header.
func writeDocument(w io.Writer, doc interface{}) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return errors.Wrap(err, "osil: write document")
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "osil: write document")
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return errors.Wrap(err, "osil: write document")
	}
	return nil
}
