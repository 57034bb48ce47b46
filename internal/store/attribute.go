package store

import (
	"context"
	"fmt"

	"recipe-app/internal/database"
	"recipe-app/internal/model"
)

// AttributeStore persists one kind of owned attribute (tags, ingredients).
type AttributeStore interface {
	// ListByOwner returns the owner's rows ordered by name, descending.
	ListByOwner(ctx context.Context, db database.Querier, userID int) ([]model.Attribute, error)
	// Create inserts a and fills in its ID.
	Create(ctx context.Context, db database.Querier, a *model.Attribute) error
}

type attributeTable struct {
	table  string
	entity string
}

var (
	Tags        AttributeStore = attributeTable{table: "tags", entity: "Tag"}
	Ingredients AttributeStore = attributeTable{table: "ingredients", entity: "Ingredient"}
)

func (t attributeTable) ListByOwner(ctx context.Context, db database.Querier, userID int) ([]model.Attribute, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, name FROM `+t.table+`
		 WHERE user_id = $1
		 ORDER BY name DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("List%ss: %w", t.entity, err)
	}
	defer rows.Close()

	list := make([]model.Attribute, 0)
	for rows.Next() {
		var a model.Attribute
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name); err != nil {
			return nil, fmt.Errorf("List%ss scan: %w", t.entity, err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List%ss rows: %w", t.entity, err)
	}
	return list, nil
}

func (t attributeTable) Create(ctx context.Context, db database.Querier, a *model.Attribute) error {
	row := db.QueryRow(ctx,
		`INSERT INTO `+t.table+` (name, user_id)
		 VALUES ($1, $2)
		 RETURNING id`,
		a.Name,
		a.UserID,
	)
	if err := row.Scan(&a.ID); err != nil {
		return fmt.Errorf("Create%s: %w", t.entity, translate(err))
	}
	return nil
}
