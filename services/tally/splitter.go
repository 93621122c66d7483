package tally

import (
	"strings"

	"port-app/models"
	"port-app/services/importer"
)

// Page is one chunk of tally items that becomes a persisted sub-report.
type Page struct {
	Bucket string
	Items  []models.TallyItem
}

// Split partitions a report's items for persistence. Import mode splits
// into container and flatbed buckets; export mode keeps a single bucket.
// Item order is preserved within each bucket, and each page holds at
// most models.TallyPageSize items.
//
// knownFlatbeds holds registered flatbed unit numbers that do not carry
// a slash in their identifier.
func Split(items []models.TallyItem, mode string, knownFlatbeds map[string]bool) []Page {
	var containers, flatbeds []models.TallyItem

	if mode == models.ModeImport {
		for _, item := range items {
			if isFlatbedItem(item, knownFlatbeds) {
				flatbeds = append(flatbeds, item)
			} else {
				containers = append(containers, item)
			}
		}
	} else {
		containers = items
	}

	var pages []Page
	pages = append(pages, paginate(containers, models.BucketContainer)...)
	pages = append(pages, paginate(flatbeds, models.BucketFlatbed)...)
	return pages
}

func isFlatbedItem(item models.TallyItem, knownFlatbeds map[string]bool) bool {
	if strings.Contains(item.ContainerNo, "/") {
		return true
	}
	if knownFlatbeds[item.ContainerNo] {
		return true
	}
	return item.ContainerNo != "" && importer.IsVehicle(item.ContainerNo)
}

func paginate(items []models.TallyItem, bucket string) []Page {
	var pages []Page
	for start := 0; start < len(items); start += models.TallyPageSize {
		end := start + models.TallyPageSize
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, Page{Bucket: bucket, Items: items[start:end]})
	}
	return pages
}
