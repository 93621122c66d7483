package customs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"port-app/models"
)

func recordedSet() []models.Container {
	return []models.Container{
		{ContainerNo: "MSKU1234567", Pkgs: 15, Weight: 27.0},
		{ContainerNo: "TCLU7654321", Pkgs: 8, Weight: 12.5},
		{ContainerNo: "HLXU1112223", Pkgs: 20, Weight: 30.0},
	}
}

func TestCheckNoIssue(t *testing.T) {
	out := Check([]Entry{
		{ContainerNo: "MSKU1234567", DeclNo: "TK001", DeclDate: "2025-01-01", Pkgs: 15, Weight: 27.0},
	}, recordedSet())

	assert.Equal(t, FindingOK, out.Rows[0].Finding)
	assert.False(t, out.HasMismatch)
	assert.Empty(t, out.Flagged)
}

func TestCheckWeightToleranceBoundary(t *testing.T) {
	// 0.05 off is still equal; anything beyond flags the row.
	out := Check([]Entry{
		{ContainerNo: "MSKU1234567", DeclNo: "TK001", Pkgs: 15, Weight: 27.05},
		{ContainerNo: "TCLU7654321", DeclNo: "TK002", Pkgs: 8, Weight: 12.56},
	}, recordedSet())

	assert.Equal(t, FindingOK, out.Rows[0].Finding)
	assert.Equal(t, FindingWeightMismatch, out.Rows[1].Finding)
	assert.Equal(t, []string{"TCLU7654321"}, out.Flagged)
}

func TestCheckPackageExactCompare(t *testing.T) {
	out := Check([]Entry{
		{ContainerNo: "MSKU1234567", DeclNo: "TK001", Pkgs: 14, Weight: 27.0},
	}, recordedSet())

	assert.Equal(t, FindingPkgMismatch, out.Rows[0].Finding)
	assert.True(t, out.HasMismatch)
}

func TestCheckMissingDeclaration(t *testing.T) {
	out := Check([]Entry{
		{ContainerNo: "MSKU1234567", Pkgs: 15, Weight: 27.0},
	}, recordedSet())

	assert.Equal(t, FindingMissingDeclaration, out.Rows[0].Finding)
	// Missing declaration is a completeness finding, not a mismatch.
	assert.False(t, out.HasMismatch)
	assert.Empty(t, out.Flagged)
}

func TestCheckSameDeclarationPropagation(t *testing.T) {
	out := Check([]Entry{
		{ContainerNo: "MSKU1234567", DeclNo: "TK001", Pkgs: 14, Weight: 27.0}, // mismatch
		{ContainerNo: "TCLU7654321", DeclNo: "TK001", Pkgs: 8, Weight: 12.5},  // sibling, own values fine
		{ContainerNo: "HLXU1112223", DeclNo: "TK002", Pkgs: 20, Weight: 30.0}, // unrelated
	}, recordedSet())

	assert.Equal(t, FindingPkgMismatch, out.Rows[0].Finding)

	// Sibling keeps its own OK finding; the flag is visual grouping only.
	assert.Equal(t, FindingOK, out.Rows[1].Finding)
	assert.True(t, out.Rows[1].SameDeclaration)
	assert.NotContains(t, out.Flagged, "TCLU7654321")

	assert.Equal(t, FindingOK, out.Rows[2].Finding)
	assert.False(t, out.Rows[2].SameDeclaration)
}

func TestCheckUnknownContainerIsOK(t *testing.T) {
	// No system record to compare against: nothing to mismatch.
	out := Check([]Entry{
		{ContainerNo: "ZZZU0000001", DeclNo: "TK009", Pkgs: 1, Weight: 1},
	}, recordedSet())

	assert.Equal(t, FindingOK, out.Rows[0].Finding)
}

func TestMissingFields(t *testing.T) {
	reports := MissingFields([]Entry{
		{ContainerNo: "MSKU1234567", DeclNo: "TK001", DeclDate: "2025-01-01", Pkgs: 15, Weight: 27.0},
		{ContainerNo: "TCLU7654321", DeclNo: "", DeclDate: "", Pkgs: 0, Weight: 12.5},
	})

	assert.Len(t, reports, 1)
	assert.Equal(t, "TCLU7654321", reports[0].ContainerNo)
	assert.ElementsMatch(t, []string{"decl_no", "decl_date", "pkgs"}, reports[0].Missing)
}

func TestApplyBulkEditSharedField(t *testing.T) {
	entries := []Entry{{ContainerNo: "A"}, {ContainerNo: "B"}, {ContainerNo: "C"}}

	touched := ApplyBulkEdit(entries, []int{0, 2}, BulkEdit{Field: "decl_no", Value: "TK100", Focused: 0})

	assert.Equal(t, []int{0, 2}, touched)
	assert.Equal(t, "TK100", entries[0].DeclNo)
	assert.Equal(t, "", entries[1].DeclNo)
	assert.Equal(t, "TK100", entries[2].DeclNo)
}

func TestApplyBulkEditPerUnitFieldCollapsesSelection(t *testing.T) {
	entries := []Entry{{ContainerNo: "A"}, {ContainerNo: "B"}, {ContainerNo: "C"}}

	touched := ApplyBulkEdit(entries, []int{0, 1, 2}, BulkEdit{Field: "seal_no", Value: "SL777", Focused: 1})

	assert.Equal(t, []int{1}, touched)
	assert.Equal(t, "", entries[0].SealNo)
	assert.Equal(t, "SL777", entries[1].SealNo)
	assert.Equal(t, "", entries[2].SealNo)
}

func TestApplyBulkEditPerUnitFieldSingleSelection(t *testing.T) {
	entries := []Entry{{ContainerNo: "A"}, {ContainerNo: "B"}}

	touched := ApplyBulkEdit(entries, []int{1}, BulkEdit{Field: "pkgs", Pkgs: 9, Focused: 1})

	assert.Equal(t, []int{1}, touched)
	assert.Equal(t, 9, entries[1].Pkgs)
}
