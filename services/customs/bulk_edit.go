package customs

// Grid fields that hold a unique value per unit. Editing one of these
// while several rows are selected collapses the selection to the focused
// row so a bulk edit cannot overwrite unique values.
var perUnitFields = map[string]bool{
	"seal_no": true,
	"pkgs":    true,
}

type BulkEdit struct {
	Field   string  `json:"field"`
	Value   string  `json:"value"`
	Pkgs    int     `json:"pkgs_value"`
	Weight  float64 `json:"weight_value"`
	Focused int     `json:"focused"`
}

// ApplyBulkEdit writes one field edit onto the selected rows of the grid
// and returns the indices actually touched.
func ApplyBulkEdit(entries []Entry, selected []int, edit BulkEdit) []int {
	if perUnitFields[edit.Field] && len(selected) > 1 {
		selected = []int{edit.Focused}
	}

	var touched []int
	for _, idx := range selected {
		if idx < 0 || idx >= len(entries) {
			continue
		}
		e := &entries[idx]
		switch edit.Field {
		case "decl_no":
			e.DeclNo = edit.Value
		case "decl_date":
			e.DeclDate = edit.Value
		case "seal_no":
			e.SealNo = edit.Value
		case "pkgs":
			e.Pkgs = edit.Pkgs
		case "weight":
			e.Weight = edit.Weight
		default:
			continue
		}
		touched = append(touched, idx)
	}
	return touched
}
