package repository

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"restbucks/internal/domain/model"
	repo "restbucks/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultBatchSize = 100

// 列挙を途中で止めたときの内部用
var errStopIteration = errors.New("stop iteration")

// GORM 実装の汎用リポジトリ
type GormRepository[T any] struct {
	db        *gorm.DB
	preloads  []string
	omits     []string
	batchSize int
}

type Option func(*gormOptions)

type gormOptions struct {
	preloads  []string
	omits     []string
	batchSize int
}

// 取得時に一緒に読む関連
func WithPreload(assoc ...string) Option {
	return func(o *gormOptions) { o.preloads = append(o.preloads, assoc...) }
}

// 保存時に書かない関連（参照だけのもの）
func WithOmit(assoc ...string) Option {
	return func(o *gormOptions) { o.omits = append(o.omits, assoc...) }
}

// 列挙時に1回で読む件数
func WithBatchSize(n int) Option {
	return func(o *gormOptions) {
		if n > 0 {
			o.batchSize = n
		}
	}
}

// DI
func NewGormRepository[T any](db *gorm.DB, opts ...Option) *GormRepository[T] {
	o := gormOptions{batchSize: defaultBatchSize}
	for _, opt := range opts {
		opt(&o)
	}
	return &GormRepository[T]{db: db, preloads: o.preloads, omits: o.omits, batchSize: o.batchSize}
}

// 商品用（カスタマイズも読む）
func NewProductRepository(db *gorm.DB) *GormRepository[model.Product] {
	return NewGormRepository[model.Product](db, WithPreload("Customizations"))
}

// 注文用（明細と商品も読む）。商品は参照のみで書き込まない
func NewOrderRepository(db *gorm.DB) *GormRepository[model.Order] {
	return NewGormRepository[model.Order](db,
		WithPreload("Items", "Items.Product"),
		WithOmit("Items.Product"),
	)
}

// 1トランザクションで保存。Create で ID が書き戻される
func (r *GormRepository[T]) MakePersistent(ctx context.Context, entities ...*T) error {
	if len(entities) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(r.omits) > 0 {
			tx = tx.Omit(r.omits...)
		}
		for _, e := range entities {
			if err := tx.Create(e).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", repo.ErrPersistence, err)
	}
	return nil
}

func (r *GormRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var e T
	err := r.query(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// 条件は WHERE に変換して DB 側で評価。batchSize ずつ読む
func (r *GormRepository[T]) Retrieve(ctx context.Context, c repo.Criteria) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		var batch []T
		err := r.Where(r.query(ctx), c).FindInBatches(&batch, r.batchSize, func(tx *gorm.DB, _ int) error {
			for i := range batch {
				e := batch[i]
				if !yield(&e, nil) {
					return errStopIteration
				}
			}
			return nil
		}).Error
		if err != nil && !errors.Is(err, errStopIteration) {
			yield(nil, err)
		}
	}
}

func (r *GormRepository[T]) RetrieveAll(ctx context.Context) iter.Seq2[*T, error] {
	return r.Retrieve(ctx, repo.Criteria{})
}

// Where は Criteria を clause.Eq に変換する
func (r *GormRepository[T]) Where(tx *gorm.DB, c repo.Criteria) *gorm.DB {
	for _, cond := range c.Conditions() {
		tx = tx.Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: cond.Column}, Value: cond.Value})
	}
	return tx
}

func (r *GormRepository[T]) query(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(new(T))
	for _, p := range r.preloads {
		tx = tx.Preload(p)
	}
	return tx
}
