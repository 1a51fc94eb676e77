package memory

import (
	"context"
	"fmt"
	"iter"
	"reflect"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	repo "restbucks/internal/repository"
)

type entity[T any] interface {
	*T
	repo.Entity
}

// Repository はテスト用のメモリ実装。
// 保存も取得もコピーで行うので、書き換えは MakePersistent を通す
type Repository[T any, PT entity[T]] struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]PT
	// 書き込み失敗を再現したいとき用
	failWith error
}

func NewRepository[T any, PT entity[T]](seed ...PT) *Repository[T, PT] {
	r := &Repository[T, PT]{items: make(map[int64]PT)}
	_ = r.MakePersistent(context.Background(), toValues[T, PT](seed)...)
	return r
}

// FailWith を設定すると以降の MakePersistent はそのエラーで失敗する
func (r *Repository[T, PT]) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failWith = err
}

func (r *Repository[T, PT]) MakePersistent(ctx context.Context, entities ...*T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return fmt.Errorf("%w: %w", repo.ErrPersistence, r.failWith)
	}

	//ID 未採番なら採番する
	for _, e := range entities {
		pe := PT(e)
		if pe.EntityID() == 0 {
			r.nextID++
			pe.AssignID(r.nextID)
		} else if pe.EntityID() > r.nextID {
			r.nextID = pe.EntityID()
		}
		v := *e
		r.items[pe.EntityID()] = PT(&v)
	}
	return nil
}

func (r *Repository[T, PT]) GetByID(ctx context.Context, id int64) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return clone[T](e), nil
}

func (r *Repository[T, PT]) Retrieve(ctx context.Context, c repo.Criteria) iter.Seq2[*T, error] {
	conds := c.Conditions()
	return func(yield func(*T, error) bool) {
		if err := ctx.Err(); err != nil {
			yield(nil, err)
			return
		}
		for _, e := range r.snapshot() {
			if !matches(e, conds) {
				continue
			}
			if !yield(clone[T](e), nil) {
				return
			}
		}
	}
}

func (r *Repository[T, PT]) RetrieveAll(ctx context.Context) iter.Seq2[*T, error] {
	return r.Retrieve(ctx, repo.Criteria{})
}

// Len は保存済みの件数
func (r *Repository[T, PT]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// id 順のコピー
func (r *Repository[T, PT]) snapshot() []PT {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]PT, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntityID() < out[j].EntityID() })
	return out
}

func matches[PT repo.Entity](e PT, conds []repo.Condition) bool {
	for _, c := range conds {
		v, ok := e.Column(c.Column)
		if !ok || !equal(v, c.Value) {
			return false
		}
	}
	return true
}

func equal(a, b any) bool {
	if da, ok := a.(decimal.Decimal); ok {
		db, ok := b.(decimal.Decimal)
		return ok && da.Equal(db)
	}
	return reflect.DeepEqual(a, b)
}

func clone[T any, PT entity[T]](e PT) *T {
	v := *(*T)(e)
	return &v
}

func toValues[T any, PT entity[T]](in []PT) []*T {
	out := make([]*T, 0, len(in))
	for _, e := range in {
		out = append(out, (*T)(e))
	}
	return out
}
