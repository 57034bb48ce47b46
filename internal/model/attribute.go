package model

// Attribute 是使用者私有的名稱型資料，Tag 與 Ingredient 共用此結構
type Attribute struct {
	ID     int    `db:"id" json:"id"`
	UserID int    `db:"user_id" json:"user_id"`
	Name   string `db:"name" json:"name"`
}
