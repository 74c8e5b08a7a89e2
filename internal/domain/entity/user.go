package entity

import "time"

// Profile изменяемые поля профиля, которые приходят из Telegram при каждом обращении
type Profile struct {
	UserID       int64
	FirstName    string
	Username     *string
	LastName     *string
	LanguageCode *string
}

// User представляет пользователя бота в хранилище
type User struct {
	UserID                 int64             `firestore:"user_id" json:"user_id"`
	FirstName              string            `firestore:"first_name" json:"first_name"`
	Username               *string           `firestore:"username" json:"username"`
	LastName               *string           `firestore:"last_name" json:"last_name"`
	LanguageCode           *string           `firestore:"language_code" json:"language_code"`
	FederalState           *FederalStateCode `firestore:"federal_state" json:"federal_state"`
	CreatedAt              time.Time         `firestore:"created_at" json:"created_at"`
	UpdatedAt              time.Time         `firestore:"updated_at" json:"updated_at"`
	TotalQuestionsAnswered int64             `firestore:"total_questions_answered" json:"total_questions_answered"`
}

// NewUser создаёт нового пользователя из профиля: created_at = updated_at = now
func NewUser(p Profile, now time.Time) *User {
	u := &User{
		CreatedAt: now,
		UpdatedAt: now,
	}
	u.ApplyProfile(p)
	return u
}

// ApplyProfile перезаписывает изменяемые поля профиля
func (u *User) ApplyProfile(p Profile) {
	u.UserID = p.UserID
	u.FirstName = p.FirstName
	u.Username = p.Username
	u.LastName = p.LastName
	u.LanguageCode = p.LanguageCode
}

// ProfileFields возвращает поля профиля в виде, пригодном для частичного обновления документа
func (p Profile) ProfileFields() map[string]any {
	return map[string]any{
		"user_id":       p.UserID,
		"first_name":    p.FirstName,
		"username":      p.Username,
		"last_name":     p.LastName,
		"language_code": p.LanguageCode,
	}
}

// Language возвращает язык пользователя или пустую строку
func (u *User) Language() string {
	if u == nil || u.LanguageCode == nil {
		return ""
	}
	return *u.LanguageCode
}
