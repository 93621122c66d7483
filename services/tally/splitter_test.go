package tally

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"port-app/models"
)

func makeItems(prefix string, n int) []models.TallyItem {
	items := make([]models.TallyItem, n)
	for i := range items {
		items[i] = models.TallyItem{ContainerNo: fmt.Sprintf("%s%07d", prefix, i+1), Pkgs: 1}
	}
	return items
}

func TestSplitImportModeBuckets(t *testing.T) {
	// 12 plain containers and 8 flatbed identifiers with a slash.
	items := makeItems("MSKU", 12)
	for i := 0; i < 8; i++ {
		items = append(items, models.TallyItem{ContainerNo: fmt.Sprintf("51C-123.%02d/01", i)})
	}

	pages := Split(items, models.ModeImport, nil)
	require.Len(t, pages, 2)
	assert.Equal(t, models.BucketContainer, pages[0].Bucket)
	assert.Len(t, pages[0].Items, 12)
	assert.Equal(t, models.BucketFlatbed, pages[1].Bucket)
	assert.Len(t, pages[1].Items, 8)
}

func TestSplitExportModeSingleBucket(t *testing.T) {
	items := makeItems("MSKU", 5)
	items = append(items, models.TallyItem{ContainerNo: "51C-123.45/01"})

	pages := Split(items, models.ModeExport, nil)
	require.Len(t, pages, 1)
	assert.Equal(t, models.BucketContainer, pages[0].Bucket)
	assert.Len(t, pages[0].Items, 6)
}

func TestSplitPagination(t *testing.T) {
	for _, tc := range []struct {
		n     int
		pages int
	}{
		{1, 1}, {15, 1}, {16, 2}, {30, 2}, {31, 3}, {45, 3},
	} {
		pages := Split(makeItems("MSKU", tc.n), models.ModeImport, nil)
		assert.Len(t, pages, tc.pages, "n=%d", tc.n)

		// Concatenating pages reproduces the original order.
		var flat []models.TallyItem
		for _, p := range pages {
			assert.LessOrEqual(t, len(p.Items), models.TallyPageSize)
			flat = append(flat, p.Items...)
		}
		require.Len(t, flat, tc.n)
		for i, item := range flat {
			assert.Equal(t, fmt.Sprintf("MSKU%07d", i+1), item.ContainerNo)
		}
	}
}

func TestSplitKnownFlatbedWithoutSlash(t *testing.T) {
	items := []models.TallyItem{
		{ContainerNo: "MSKU0000001"},
		{ContainerNo: "MOOC1234567"},
	}
	pages := Split(items, models.ModeImport, map[string]bool{"MOOC1234567": true})

	require.Len(t, pages, 2)
	assert.Equal(t, "MSKU0000001", pages[0].Items[0].ContainerNo)
	assert.Equal(t, "MOOC1234567", pages[1].Items[0].ContainerNo)
}

func TestNextSequences(t *testing.T) {
	prefix := ReportPrefix(models.ModeImport, 42)
	assert.Equal(t, "PB-NHAP-42-", prefix)

	// Empty history starts at 01.
	assert.Equal(t, []string{"PB-NHAP-42-01"}, NextSequences(nil, prefix, 1))

	// Scan picks the max suffix, ignoring other prefixes and junk.
	existing := []string{
		"PB-NHAP-42-01",
		"PB-NHAP-42-07",
		"PB-NHAP-42-03",
		"PB-XUAT-42-99",
		"PB-NHAP-42-XX",
	}
	got := NextSequences(existing, prefix, 3)
	assert.Equal(t, []string{"PB-NHAP-42-08", "PB-NHAP-42-09", "PB-NHAP-42-10"}, got)
}

func TestNextSequencesNoCollisionWithinBatch(t *testing.T) {
	prefix := ReportPrefix(models.ModeExport, 7)
	got := NextSequences([]string{"PB-XUAT-7-02"}, prefix, 4)

	seen := map[string]bool{"PB-XUAT-7-02": true}
	for _, no := range got {
		assert.False(t, seen[no], "duplicate report no %s", no)
		seen[no] = true
	}
}

func TestNextSequencesPadsToTwoDigits(t *testing.T) {
	prefix := ReportPrefix(models.ModeImport, 1)
	got := NextSequences([]string{"PB-NHAP-1-09"}, prefix, 2)
	assert.Equal(t, []string{"PB-NHAP-1-10", "PB-NHAP-1-11"}, got)
}
