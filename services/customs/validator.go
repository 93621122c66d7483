package customs

import (
	"math"

	"port-app/models"
)

// Validator for the customs declaration grid: officer-entered values are
// compared against the system of record per container. Findings never
// block a save; they only change what is reported and which containers
// get flagged for the logistics view.

const (
	FindingOK                 = "OK"
	FindingPkgMismatch        = "PKG_MISMATCH"
	FindingWeightMismatch     = "WEIGHT_MISMATCH"
	FindingMissingDeclaration = "MISSING_DECLARATION"

	// Scale-to-scale noise allowance when comparing weights (ton).
	WeightTolerance = 0.05
)

// Entry is one row of the customs grid as entered by the officer.
type Entry struct {
	ContainerNo string  `json:"container_no"`
	DeclNo      string  `json:"decl_no"`
	DeclDate    string  `json:"decl_date"`
	Pkgs        int     `json:"pkgs"`
	Weight      float64 `json:"weight"`
	SealNo      string  `json:"seal_no"`
}

type RowResult struct {
	ContainerNo     string `json:"container_no"`
	Finding         string `json:"finding"`
	SameDeclaration bool   `json:"same_declaration"`
}

type Outcome struct {
	Rows        []RowResult `json:"rows"`
	HasMismatch bool        `json:"has_mismatch"`
	// Containers to be marked ISSUE downstream.
	Flagged []string `json:"flagged"`
}

// MissingReport lists the fields a row still lacks before the mismatch
// check is worth running. Shown as a confirmation, not an error.
type MissingReport struct {
	ContainerNo string   `json:"container_no"`
	Missing     []string `json:"missing"`
}

// Check classifies every grid row against the recorded containers. A
// mismatched row additionally marks every sibling sharing its declaration
// number as suspect; the sibling's own values are not re-compared
// (visual grouping only).
func Check(entries []Entry, recorded []models.Container) Outcome {
	byNo := make(map[string]*models.Container, len(recorded))
	for i := range recorded {
		byNo[recorded[i].ContainerNo] = &recorded[i]
	}

	out := Outcome{Rows: make([]RowResult, len(entries))}
	suspectDecls := map[string]bool{}

	for i, e := range entries {
		finding := FindingOK

		if e.DeclNo == "" {
			finding = FindingMissingDeclaration
		} else if rec, ok := byNo[e.ContainerNo]; ok {
			if e.Pkgs != rec.Pkgs {
				finding = FindingPkgMismatch
			} else if math.Abs(e.Weight-rec.Weight)-WeightTolerance > 1e-9 {
				// A difference of exactly the tolerance still passes;
				// the epsilon keeps the boundary stable under float64.
				finding = FindingWeightMismatch
			}
		}

		if finding == FindingPkgMismatch || finding == FindingWeightMismatch {
			out.HasMismatch = true
			out.Flagged = append(out.Flagged, e.ContainerNo)
			if e.DeclNo != "" {
				suspectDecls[e.DeclNo] = true
			}
		}

		out.Rows[i] = RowResult{ContainerNo: e.ContainerNo, Finding: finding}
	}

	// One declaration covers many containers; an error on one likely
	// means the whole group needs re-verification.
	for i, e := range entries {
		if suspectDecls[e.DeclNo] && out.Rows[i].Finding == FindingOK {
			out.Rows[i].SameDeclaration = true
		}
	}

	return out
}

// MissingFields runs the pre-save completeness pass.
func MissingFields(entries []Entry) []MissingReport {
	var reports []MissingReport
	for _, e := range entries {
		var missing []string
		if e.DeclNo == "" {
			missing = append(missing, "decl_no")
		}
		if e.DeclDate == "" {
			missing = append(missing, "decl_date")
		}
		if e.Pkgs == 0 {
			missing = append(missing, "pkgs")
		}
		if e.Weight == 0 {
			missing = append(missing, "weight")
		}
		if len(missing) > 0 {
			reports = append(reports, MissingReport{ContainerNo: e.ContainerNo, Missing: missing})
		}
	}
	return reports
}
