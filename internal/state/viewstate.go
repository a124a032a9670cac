package state

import "github.com/five82/marauder/internal/catalog"

// HouseAll is the house filter value that matches every record.
const HouseAll = "All"

// ViewState is the browser's mutable state.
type ViewState struct {
	Records     []catalog.Character
	Loading     bool
	LoadErr     error
	Selected    *catalog.Character
	Page        int
	SearchText  string
	HouseFilter string

	cache viewCache
}

// New returns the state at startup: loading, first page, no filters.
func New() *ViewState {
	return &ViewState{
		Loading:     true,
		Page:        1,
		HouseFilter: HouseAll,
	}
}

// Loaded records the outcome of the catalog load. On error the collection
// stays empty; either way loading is over.
func (s *ViewState) Loaded(records []catalog.Character, err error) {
	s.Loading = false
	s.LoadErr = err
	if err != nil {
		s.Records = nil
	} else {
		s.Records = records
	}
	s.Selected = nil
	s.cache = viewCache{}
}

// SetSearch replaces the search text and returns to the first page.
func (s *ViewState) SetSearch(text string) {
	s.SearchText = text
	s.Page = 1
}

// SetHouse replaces the house filter and returns to the first page.
// An empty value means HouseAll.
func (s *ViewState) SetHouse(house string) {
	if house == "" {
		house = HouseAll
	}
	s.HouseFilter = house
	s.Page = 1
}

// SetPage moves to page n. Pages past the end are allowed and render empty.
func (s *ViewState) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	s.Page = n
}

// Select marks ch as the character shown in the detail overlay.
// ch should point into Records, typically taken from View().Items.
func (s *ViewState) Select(ch *catalog.Character) {
	s.Selected = ch
}

// ClearSelection closes the detail overlay.
func (s *ViewState) ClearSelection() {
	s.Selected = nil
}

// View returns the view model for the current state.
func (s *ViewState) View() View {
	key := viewKey{search: s.SearchText, house: s.HouseFilter, page: s.Page}
	if s.cache.valid && s.cache.key == key {
		return s.cache.view
	}
	v := Build(s.Records, s.SearchText, s.HouseFilter, s.Page)
	s.cache = viewCache{key: key, view: v, valid: true}
	return v
}

type viewKey struct {
	search string
	house  string
	page   int
}

type viewCache struct {
	key   viewKey
	view  View
	valid bool
}
