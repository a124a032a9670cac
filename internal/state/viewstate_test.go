package state

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNew_Defaults(t *testing.T) {
	s := New()
	if !s.Loading || s.Page != 1 || s.HouseFilter != HouseAll || s.SearchText != "" || s.Selected != nil {
		t.Fatalf("New() = %+v, want loading, page 1, house All, no search, nothing selected", s)
	}
}

func TestLoaded_SuccessAndFailure(t *testing.T) {
	s := New()
	s.Loaded(sampleRecords(), nil)
	if s.Loading || len(s.Records) != len(sampleRecords()) || s.LoadErr != nil {
		t.Fatalf("after success: Loading=%v len=%d err=%v", s.Loading, len(s.Records), s.LoadErr)
	}

	s = New()
	loadErr := errors.New("boom")
	s.Loaded(sampleRecords(), loadErr)
	if s.Loading {
		t.Fatalf("Loading = true after failed load, want false")
	}
	if len(s.Records) != 0 {
		t.Fatalf("Records = %d after failed load, want empty", len(s.Records))
	}
	if !errors.Is(s.LoadErr, loadErr) {
		t.Fatalf("LoadErr = %v, want %v", s.LoadErr, loadErr)
	}
	v := s.View()
	if v.TotalFiltered != 0 || v.TotalPages != 0 || len(v.Items) != 0 {
		t.Fatalf("View after failed load = %+v, want empty", v)
	}
}

func TestFilterChangesResetPage(t *testing.T) {
	cases := []struct {
		name  string
		apply func(*ViewState)
	}{
		{"search", func(s *ViewState) { s.SetSearch("potter") }},
		{"same search again", func(s *ViewState) { s.SetSearch(s.SearchText) }},
		{"house", func(s *ViewState) { s.SetHouse("Slytherin") }},
		{"house back to all", func(s *ViewState) { s.SetHouse(HouseAll) }},
		{"cleared search", func(s *ViewState) { s.SetSearch("") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			s.Loaded(manyRecords(40), nil)
			s.SetPage(4)
			_ = s.View()
			tc.apply(s)
			if s.Page != 1 {
				t.Fatalf("Page = %d after %s change, want 1", s.Page, tc.name)
			}
			if v := s.View(); v.Page != 1 {
				t.Fatalf("View().Page = %d, want 1", v.Page)
			}
		})
	}
}

func TestSetHouse_EmptyMeansAll(t *testing.T) {
	s := New()
	s.SetHouse("Ravenclaw")
	s.SetHouse("")
	if s.HouseFilter != HouseAll {
		t.Fatalf("HouseFilter = %q, want %q", s.HouseFilter, HouseAll)
	}
}

func TestSetPage_ClampsBelowOne(t *testing.T) {
	s := New()
	s.SetPage(-3)
	if s.Page != 1 {
		t.Fatalf("Page = %d, want 1", s.Page)
	}
	s.SetPage(99)
	if s.Page != 99 {
		t.Fatalf("Page = %d, want 99 (no upper clamp)", s.Page)
	}
}

func TestSelectAndClear(t *testing.T) {
	s := New()
	s.Loaded(sampleRecords(), nil)
	item := s.View().Items[2]
	s.Select(item)
	if s.Selected != &s.Records[2] {
		t.Fatalf("Selected does not point at the chosen record")
	}
	s.ClearSelection()
	if s.Selected != nil {
		t.Fatalf("Selected = %v after ClearSelection, want nil", s.Selected)
	}
}

func TestView_CachedMatchesBuild(t *testing.T) {
	s := New()
	s.Loaded(append(sampleRecords(), manyRecords(30)...), nil)

	steps := []func(){
		func() {},
		func() { s.SetPage(2) },
		func() { s.SetSearch("wizard 1") },
		func() { s.SetPage(2) },
		func() { s.SetHouse("Gryffindor") },
		func() { s.SetHouse(HouseAll) },
		func() { s.SetSearch("") },
		func() { s.SetPage(5) },
		func() { s.SetPage(50) },
	}
	for i, step := range steps {
		step()
		first := s.View()
		second := s.View()
		want := Build(s.Records, s.SearchText, s.HouseFilter, s.Page)
		opts := cmpopts.EquateEmpty()
		if diff := cmp.Diff(want, first, opts); diff != "" {
			t.Fatalf("step %d: cached view differs from Build (-want +got):\n%s", i, diff)
		}
		if diff := cmp.Diff(first, second, opts); diff != "" {
			t.Fatalf("step %d: repeated View() differs (-first +second):\n%s", i, diff)
		}
	}
}

func TestLoaded_InvalidatesCache(t *testing.T) {
	s := New()
	if v := s.View(); v.TotalFiltered != 0 {
		t.Fatalf("View before load = %+v, want empty", v)
	}
	s.Loaded(sampleRecords(), nil)
	if v := s.View(); v.TotalFiltered != len(sampleRecords()) {
		t.Fatalf("View after load TotalFiltered = %d, want %d", v.TotalFiltered, len(sampleRecords()))
	}
}
