package entity

import "time"

// Solution код правильного варианта ответа
type Solution string

const (
	SolutionA Solution = "a"
	SolutionB Solution = "b"
	SolutionC Solution = "c"
	SolutionD Solution = "d"
)

// Solutions все допустимые варианты в порядке отображения
var Solutions = []Solution{SolutionA, SolutionB, SolutionC, SolutionD}

// Valid проверяет, что код входит в a..d
func (s Solution) Valid() bool {
	switch s {
	case SolutionA, SolutionB, SolutionC, SolutionD:
		return true
	}
	return false
}

// Question вопрос теста; Num одновременно ключ документа
type Question struct {
	Num       string    `firestore:"num" json:"num"`
	Solution  Solution  `firestore:"solution" json:"solution"`
	Category  string    `firestore:"category" json:"category"`
	Image     *string   `firestore:"image" json:"image"`
	CreatedAt time.Time `firestore:"created_at" json:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at" json:"updated_at"`
}

// HasImage сообщает, относится ли вопрос к картинке
func (q *Question) HasImage() bool {
	return q.Image != nil && *q.Image != ""
}
