// Package docstore адресует документы иерархически (коллекция/документ/подколлекция)
// и скрывает конкретное хранилище за интерфейсом Store.
package docstore

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrNotFound документ отсутствует (Update по несуществующему документу)
	ErrNotFound = errors.New("document not found")
	// ErrNotInitialized хранилище ещё не подключено
	ErrNotInitialized = errors.New("document store is not initialized")
	// ErrInvalidCredentials ключ сервисного аккаунта отсутствует или повреждён
	ErrInvalidCredentials = errors.New("invalid service account credentials")
)

// Store минимальный набор операций над документами.
// Каждая операция выполняет ровно одно обращение к хранилищу.
type Store interface {
	// Get читает документ в dst. found=false, если документа нет.
	Get(ctx context.Context, ref Ref, dst any) (found bool, err error)

	// Set полностью перезаписывает документ
	Set(ctx context.Context, ref Ref, data any) error

	// Update сливает поля в существующий документ, ErrNotFound если его нет
	Update(ctx context.Context, ref Ref, fields map[string]any) error

	IsInitialized() bool
	Close() error
}

// Ref адрес документа: users/42, questions/7/translations/de
type Ref struct {
	parent     *Ref
	Collection string
	ID         string
}

// Doc адрес документа в коллекции верхнего уровня
func Doc(collection, id string) Ref {
	return Ref{Collection: collection, ID: id}
}

// Child адрес документа в подколлекции текущего документа
func (r Ref) Child(collection, id string) Ref {
	parent := r
	return Ref{parent: &parent, Collection: collection, ID: id}
}

// Parent возвращает родительский документ, если он есть
func (r Ref) Parent() (Ref, bool) {
	if r.parent == nil {
		return Ref{}, false
	}
	return *r.parent, true
}

// Path полный путь документа
func (r Ref) Path() string {
	var parts []string
	for cur := &r; cur != nil; cur = cur.parent {
		parts = append([]string{cur.Collection, cur.ID}, parts...)
	}
	return strings.Join(parts, "/")
}

func (r Ref) String() string {
	return r.Path()
}

// Increment значение поля для Update, атомарно прибавляющее Delta
type Increment struct {
	Delta int64
}

// Inc сокращение для Increment{Delta: n}
func Inc(n int64) Increment {
	return Increment{Delta: n}
}
