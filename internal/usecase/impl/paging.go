package impl

import "organic/config"

func clampPage(page int) int {
	if page < 1 {
		return 1
	}

	return page
}

func clampPerPage(perPage int, cfg *config.Config) int {
	if perPage < 1 {
		return cfg.Catalog.DefaultPerPage
	}
	if max := cfg.Catalog.MaxPerPage; max > 0 && perPage > max {
		return max
	}

	return perPage
}
