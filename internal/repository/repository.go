package repository

import (
	"context"
	"errors"
	"iter"
)

var (
	ErrNotFound = errors.New("not found")
	// ストアが書き込みを拒否した（制約違反・接続断など）
	ErrPersistence = errors.New("persistence failure")
)

// 永続化の唯一の入口。T はエンティティの型（Product / Order）
type Repository[T any] interface {
	// 1つの論理単位で保存する。ID 未採番のものには採番して書き戻す
	MakePersistent(ctx context.Context, entities ...*T) error
	GetByID(ctx context.Context, id int64) (*T, error)
	// 条件はストア側で評価される。列挙は range した時点で実行
	Retrieve(ctx context.Context, c Criteria) iter.Seq2[*T, error]
	RetrieveAll(ctx context.Context) iter.Seq2[*T, error]
}

// Entity はメモリ実装が ID 採番と条件評価に使う
type Entity interface {
	EntityID() int64
	AssignID(id int64)
	Column(name string) (any, bool)
}

// Collect は列挙を最後まで読んでスライスにする
func Collect[T any](seq iter.Seq2[*T, error]) ([]*T, error) {
	var out []*T
	for e, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
