// Package state holds the browser's view state and derives the page shown from it.
//
// # Overview
//
// ViewState is the single owner of everything that changes while browsing:
// the loaded records, the loading flag, the search text, the house filter,
// the current page and the selected character. Each user event has its own
// update method, so the whole state machine can be driven from tests without
// a terminal.
//
//	event            method              side effect
//	─────────────────────────────────────────────────────────
//	load settles     Loaded(records,err) Loading=false
//	search typed     SetSearch(text)     Page=1
//	house chosen     SetHouse(house)     Page=1
//	page chosen      SetPage(n)          n<1 clamps to 1
//	card chosen      Select(ch)
//	overlay closed   ClearSelection()
//
// # View Model
//
// Build is a pure function from (records, search, house, page) to a View:
// the window of at most PageSize records for the page plus the filtered and
// page totals. ViewState.View memoizes Build on (search, house, page); the
// cached value is always identical to calling Build directly.
//
// Filtering keeps the original record order. Name matching is a
// case-insensitive substring test using Unicode case folding; house matching
// is exact.
//
// # Pager
//
// PagerLabels collapses long page ranges the way the pager shows them:
//
//	PagerLabels(5, 10) → 1 … 4 5 6 … 10
//	PagerLabels(1, 3)  → 1 2 3
//
// # Concurrency
//
// ViewState is not safe for concurrent use. The UI owns it and mutates it
// only from its Update loop; the catalog load result arrives there as a
// message, so every render sees a consistent state.
package state
