package models

// Question mirrors a row of the questions table.
type Question struct {
	ID         int64  `db:"id"`
	Question   string `db:"question"`
	Answer     string `db:"answer"`
	Category   int64  `db:"category"`
	Difficulty int    `db:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}

// Category mirrors a row of the categories table.
type Category struct {
	ID   int64  `db:"id"`
	Type string `db:"type"`
}

func (Category) TableName() string {
	return "categories"
}
