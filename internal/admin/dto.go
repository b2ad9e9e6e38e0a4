package admin

// ExportQuery binds the directory filter and sort for exports.
type ExportQuery struct {
	Filter
	SortBy  string `form:"sortBy"`
	SortDir string `form:"sortDir"`
}

// ListQuery binds a directory page request. FilterToken is the token the
// client received with its previous page.
type ListQuery struct {
	ExportQuery
	Page        int    `form:"page" binding:"omitempty,min=1"`
	FilterToken string `form:"filterToken"`
}
