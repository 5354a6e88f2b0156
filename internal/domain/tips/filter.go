package tips

// List filter keys accepted by the tips tab.
const (
	FilterAll      = "all"
	FilterFree     = "free"
	FilterVIP      = "vip"
	FilterActive   = "active"
	FilterInactive = "inactive"
)

// Filter applies the selected predicate to an already-loaded tip list.
func Filter(list []Tip, filter string) []Tip {
	out := make([]Tip, 0, len(list))
	for _, t := range list {
		switch filter {
		case FilterFree:
			if t.Category != CategoryFree {
				continue
			}
		case FilterVIP:
			if t.Category != CategoryVIP {
				continue
			}
		case FilterActive:
			if !t.IsActive {
				continue
			}
		case FilterInactive:
			if t.IsActive {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
