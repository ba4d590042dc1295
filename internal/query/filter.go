package query

import "strings"

type Mode int

const (
	ModeNone Mode = iota
	ModeCategory
	ModeText
)

func (m Mode) String() string {
	switch m {
	case ModeCategory:
		return "category"
	case ModeText:
		return "text"
	default:
		return "none"
	}
}

// SearchFilterState is the single active filter of the product listing.
type SearchFilterState struct {
	Mode  Mode
	Value string
}

func NoFilter() SearchFilterState {
	return SearchFilterState{}
}

func CategoryFilter(categoryId string) SearchFilterState {
	return SearchFilterState{Mode: ModeCategory, Value: categoryId}
}

func TextFilter(text string) SearchFilterState {
	return SearchFilterState{Mode: ModeText, Value: text}
}

// Active reports whether the filter narrows the listing at all.
func (f SearchFilterState) Active() bool {
	return f.Mode != ModeNone && strings.TrimSpace(f.Value) != ""
}
