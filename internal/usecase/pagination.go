package usecase

import "labor-intel/internal/repository"

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

type PageInput struct {
	Page    int
	PerPage int
}

type PageResult struct {
	Page    int
	PerPage int
	Total   int
	Pages   int
}

func normalizePage(in PageInput) (repository.Page, error) {
	if in.Page < 0 || in.PerPage < 0 {
		return repository.Page{}, invalidf("page and per_page must be positive")
	}
	p := repository.Page{Page: in.Page, PerPage: in.PerPage}
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.PerPage == 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p, nil
}

func pageResult(p repository.Page, total int) PageResult {
	pages := 0
	if p.PerPage > 0 {
		pages = (total + p.PerPage - 1) / p.PerPage
	}
	return PageResult{Page: p.Page, PerPage: p.PerPage, Total: total, Pages: pages}
}
