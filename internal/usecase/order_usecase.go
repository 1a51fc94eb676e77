package usecase

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"restbucks/internal/domain/model"
	"restbucks/internal/linking"
	repo "restbucks/internal/repository"

	log "github.com/sirupsen/logrus"
)

// 注文作成の段階（ログ用）
type CreationStage string

const (
	StageReceived   CreationStage = "received"
	StageValidating CreationStage = "validating"
	StageRejected   CreationStage = "rejected"
	StageAssembling CreationStage = "assembling"
	StagePersisting CreationStage = "persisting"
	StageFailed     CreationStage = "failed"
	StageLinking    CreationStage = "linking"
	StageCompleted  CreationStage = "completed"
)

// メトリクスの記録先
type OrderRecorder interface {
	RecordCreated(d time.Duration)
	RecordRejected(reason string, d time.Duration)
	RecordFailed(d time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) RecordCreated(time.Duration)          {}
func (noopRecorder) RecordRejected(string, time.Duration) {}
func (noopRecorder) RecordFailed(time.Duration)           {}

// パース済みの注文リクエスト。Location が空ならデフォルト
type CreateOrderInput struct {
	Location model.Location
	Items    []OrderItemInput
}

type CreateOrderOutput struct {
	OrderID  int64  `json:"id"`
	Location string `json:"location"`
}

type OrderUsecase struct {
	validator *OrderValidator
	assembler *OrderAssembler
	orders    repo.Repository[model.Order]
	linker    linking.ResourceLinker
	recorder  OrderRecorder
	logger    *log.Entry
}

// DI
func NewOrderUsecase(
	catalog repo.Catalog,
	orders repo.Repository[model.Order],
	linker linking.ResourceLinker,
	clock Clock,
	recorder OrderRecorder,
) *OrderUsecase {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &OrderUsecase{
		validator: NewOrderValidator(catalog),
		assembler: NewOrderAssembler(clock),
		orders:    orders,
		linker:    linker,
		recorder:  recorder,
		logger:    log.WithField("component", "order_usecase"),
	}
}

// CreateOrder は 検証 → 組み立て → 保存 → URI生成 を1リクエストで行う。
// 検証エラーは 400（メッセージそのまま）、保存・リンクの失敗は 500。
func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (CreateOrderOutput, error) {
	start := time.Now()
	logger := u.logger.WithField("items", len(in.Items))
	stage := func(s CreationStage) { logger.WithField("stage", s).Debug("order creation") }

	stage(StageReceived)

	stage(StageValidating)
	items, err := u.validator.Validate(ctx, in.Items)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			stage(StageRejected)
			logger.WithField("reason", verr.Message).Info("order rejected")
			u.recorder.RecordRejected(rejectReason(verr), time.Since(start))
			return CreateOrderOutput{}, WrapHTTPError(http.StatusBadRequest, verr.Message, verr)
		}
		stage(StageFailed)
		logger.WithError(err).Error("catalog lookup failed")
		u.recorder.RecordFailed(time.Since(start))
		return CreateOrderOutput{}, WrapHTTPError(http.StatusInternalServerError, "internal error", err)
	}

	stage(StageAssembling)
	order := u.assembler.Assemble(items, in.Location)

	stage(StagePersisting)
	if err := u.orders.MakePersistent(ctx, &order); err != nil {
		stage(StageFailed)
		logger.WithError(err).Error("persist order failed")
		u.recorder.RecordFailed(time.Since(start))
		return CreateOrderOutput{}, WrapHTTPError(http.StatusInternalServerError, "internal error", err)
	}

	stage(StageLinking)
	uri, err := u.linker.URI(linking.RouteOrder, linking.Params{
		"orderId": strconv.FormatInt(order.ID, 10),
	})
	if err != nil {
		stage(StageFailed)
		logger.WithError(err).WithField("order_id", order.ID).Error("link order failed")
		u.recorder.RecordFailed(time.Since(start))
		return CreateOrderOutput{}, WrapHTTPError(http.StatusInternalServerError, "internal error", err)
	}

	stage(StageCompleted)
	logger.WithFields(log.Fields{
		"order_id": order.ID,
		"location": order.Location,
		"total":    order.Total().String(),
	}).Info("order created")
	u.recorder.RecordCreated(time.Since(start))

	return CreateOrderOutput{OrderID: order.ID, Location: uri}, nil
}

// GetOrder は ID で注文を返す（Location が指す先）
func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (model.Order, error) {
	if orderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orders.GetByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.logger.WithError(err).WithField("order_id", orderID).Error("get order failed")
		return model.Order{}, WrapHTTPError(http.StatusInternalServerError, "db error", err)
	}
	return *o, nil
}

func rejectReason(verr *ValidationError) string {
	switch {
	case errors.Is(verr, ErrProductNotOffered):
		return "product_not_offered"
	case errors.Is(verr, ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(verr, ErrInvalidPreference):
		return "invalid_preference"
	}
	return "other"
}
