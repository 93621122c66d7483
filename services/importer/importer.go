package importer

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"port-app/models"
)

// Reconcile merges a parsed manifest sheet into a vessel's existing
// container set. Rows are keyed by container number: a match updates the
// existing record in place (stable ID), anything else is inserted.

var ErrNoData = errors.New("no valid data rows found in sheet")

// Sentinel values that mark a numbering column, not a data row.
var skipValues = map[string]bool{
	"NO":  true,
	"STT": true,
}

var containerNoPattern = regexp.MustCompile(`^[A-Z]{4}\d{7}$`)

// Canonical column keys and their header synonyms. Manifests arrive from
// several carriers in English or Vietnamese.
var headerSynonyms = map[string][]string{
	"container":           {"container no", "container number", "cont no", "so cont", "số cont", "so hieu cont", "số hiệu cont"},
	"seal":                {"seal no", "seal number", "seal", "so chi", "số chì", "chi", "chì"},
	"pkgs":                {"pkgs", "packages", "package", "so kien", "số kiện", "kien", "kiện"},
	"weight":              {"weight", "weight (ton)", "trong luong", "trọng lượng", "tan", "tấn"},
	"consignee":           {"consignee", "chu hang", "chủ hàng"},
	"carrier_decl_no":     {"carrier decl no", "to khai hang tau", "tờ khai hãng tàu", "so to khai ht", "số tờ khai ht"},
	"carrier_decl_date":   {"carrier decl date", "ngay tk hang tau", "ngày tk hãng tàu"},
	"warehouse_decl_no":   {"warehouse decl no", "to khai kho", "tờ khai kho", "so to khai kho", "số tờ khai kho"},
	"warehouse_decl_date": {"warehouse decl date", "ngay tk kho", "ngày tk kho"},
	"dem_det":             {"dem/det", "dem det", "han tra rong", "hạn trả rỗng"},
}

const headerScanLimit = 20

type Result struct {
	Containers  []models.Container
	TotalPkgs   int
	TotalWeight float64
	Inserted    int
	Updated     int
}

// DetectHeader scans the first rows of the grid for one that carries
// recognizable column names. The returned map is canonical key -> column
// index. When nothing matches, row 0 is treated as the header and the
// identifier defaults to the first column.
func DetectHeader(grid [][]string) (int, map[string]int) {
	limit := headerScanLimit
	if len(grid) < limit {
		limit = len(grid)
	}

	for i := 0; i < limit; i++ {
		cols := matchHeaderRow(grid[i])
		if _, ok := cols["container"]; ok && len(cols) >= 2 {
			return i, cols
		}
	}

	var cols map[string]int
	if len(grid) > 0 {
		cols = matchHeaderRow(grid[0])
	} else {
		cols = map[string]int{}
	}
	if _, ok := cols["container"]; !ok {
		cols["container"] = 0
	}
	return 0, cols
}

func matchHeaderRow(row []string) map[string]int {
	cols := map[string]int{}
	for idx, cell := range row {
		token := strings.ToLower(strings.TrimSpace(cell))
		if token == "" {
			continue
		}
		for key, synonyms := range headerSynonyms {
			if _, taken := cols[key]; taken {
				continue
			}
			for _, syn := range synonyms {
				if token == syn {
					cols[key] = idx
					break
				}
			}
		}
	}
	return cols
}

// IsVehicle reports whether an identifier names a flatbed/vehicle slot
// rather than an ISO container.
func IsVehicle(unitNo string) bool {
	if strings.Contains(unitNo, "/") {
		return true
	}
	return !containerNoPattern.MatchString(unitNo)
}

// Reconcile parses the grid and merges it into existing. Existing records
// keep their order and identifiers; new rows are appended in sheet order.
func Reconcile(grid [][]string, existing []models.Container, vesselID int64) (*Result, error) {
	headerRow, cols := DetectHeader(grid)

	byNo := make(map[string]int, len(existing))
	merged := make([]models.Container, len(existing))
	copy(merged, existing)
	for i := range merged {
		byNo[merged[i].ContainerNo] = i
	}

	res := &Result{}
	validRows := 0

	for i := headerRow + 1; i < len(grid); i++ {
		row := grid[i]
		unitNo := strings.ToUpper(strings.TrimSpace(cell(row, cols["container"])))
		if unitNo == "" || skipValues[unitNo] {
			continue
		}
		validRows++

		idx, found := byNo[unitNo]
		if !found {
			merged = append(merged, models.Container{
				VesselID:    vesselID,
				ContainerNo: unitNo,
			})
			idx = len(merged) - 1
			byNo[unitNo] = idx
			res.Inserted++
		} else {
			res.Updated++
		}

		c := &merged[idx]
		c.Type = models.UnitTypeContainer
		if IsVehicle(unitNo) {
			c.Type = models.UnitTypeVehicle
		}

		// Only columns present in the sheet overwrite; malformed cells
		// coerce to zero values instead of failing the import.
		if col, ok := cols["seal"]; ok {
			c.SealNo = strings.TrimSpace(cell(row, col))
		}
		if col, ok := cols["pkgs"]; ok {
			c.Pkgs = parseInt(cell(row, col))
		}
		if col, ok := cols["weight"]; ok {
			c.Weight = parseFloat(cell(row, col))
		}
		if col, ok := cols["consignee"]; ok {
			c.Consignee = strings.TrimSpace(cell(row, col))
		}
		if col, ok := cols["carrier_decl_no"]; ok {
			c.CarrierDeclNo = strings.TrimSpace(cell(row, col))
		}
		if col, ok := cols["carrier_decl_date"]; ok {
			c.CarrierDeclDate = parseDate(cell(row, col))
		}
		if col, ok := cols["warehouse_decl_no"]; ok {
			c.WarehouseDeclNo = strings.TrimSpace(cell(row, col))
		}
		if col, ok := cols["warehouse_decl_date"]; ok {
			c.WarehouseDeclDate = parseDate(cell(row, col))
		}
		if col, ok := cols["dem_det"]; ok {
			c.DemDetDate = parseDate(cell(row, col))
		}

		c.Status = deriveStatus(c)
	}

	if validRows == 0 {
		return nil, ErrNoData
	}

	for _, c := range merged {
		res.TotalPkgs += c.Pkgs
		res.TotalWeight += c.Weight
	}
	res.Containers = merged

	return res, nil
}

// A unit is ready for tally only once both declarations are on file.
func deriveStatus(c *models.Container) string {
	if c.CarrierDeclNo != "" && c.WarehouseDeclNo != "" {
		return models.ContainerStatusReady
	}
	return models.ContainerStatusPending
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseInt(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	// Some sheets format counts as "15.0"
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func parseFloat(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return 0
}

var dateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006", "2/1/2006"}

func parseDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
