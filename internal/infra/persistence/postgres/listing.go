package postgres

import (
	"fmt"

	"organic/internal/domain/repository"

	"gorm.io/gorm"
)

// applyConditions translates ListQuery conditions into WHERE clauses.
// Field names come from the repository layer, never from request input.
func applyConditions(db *gorm.DB, query repository.ListQuery) *gorm.DB {
	for _, cond := range query.Conditions {
		switch cond.Op {
		case repository.OpEq:
			db = db.Where(fmt.Sprintf("%s = ?", cond.Field), cond.Value)
		case repository.OpIn:
			db = db.Where(fmt.Sprintf("%s IN ?", cond.Field), cond.Value)
		case repository.OpGte:
			db = db.Where(fmt.Sprintf("%s >= ?", cond.Field), cond.Value)
		case repository.OpLte:
			db = db.Where(fmt.Sprintf("%s <= ?", cond.Field), cond.Value)
		case repository.OpGt:
			db = db.Where(fmt.Sprintf("%s > ?", cond.Field), cond.Value)
		case repository.OpLt:
			db = db.Where(fmt.Sprintf("%s < ?", cond.Field), cond.Value)
		}
	}

	return db
}

// applySorts translates ListQuery sorts into ORDER BY clauses.
func applySorts(db *gorm.DB, query repository.ListQuery) *gorm.DB {
	for _, s := range query.Sorts {
		direction := "ASC"
		if s.Desc {
			direction = "DESC"
		}
		db = db.Order(fmt.Sprintf("%s %s", s.Field, direction))
	}

	return db
}

// applyWindow applies the pagination window.
func applyWindow(db *gorm.DB, query repository.ListQuery) *gorm.DB {
	return db.Offset(query.Offset()).Limit(query.Limit())
}
