package searchsync

import (
	"context"
	"time"

	"carmarket-service/prometheus"

	"go.uber.org/zap"
)

const (
	defaultOutboxSize  = 256
	defaultMaxAttempts = 3
	defaultRetryDelay  = 2 * time.Second
)

type opKind int

const (
	opUpsert opKind = iota
	opDelete
)

func (k opKind) String() string {
	if k == opDelete {
		return "delete"
	}
	return "upsert"
}

type indexOp struct {
	kind opKind
	doc  ListingDocument
	id   string
}

func (op indexOp) docID() string {
	if op.kind == opDelete {
		return op.id
	}
	return op.doc.ID
}

// outbox is a bounded in-process queue of index operations with a
// single background drain goroutine. Operations are retried a bounded
// number of times and then dropped; the relational store is the system
// of record, so a dropped operation means stale search results, not
// lost data.
type outbox struct {
	ops         chan indexOp
	apply       func(context.Context, indexOp) error
	log         *zap.Logger
	maxAttempts int
	retryDelay  time.Duration
}

func newOutbox(size int, apply func(context.Context, indexOp) error, log *zap.Logger) *outbox {
	return &outbox{
		ops:         make(chan indexOp, size),
		apply:       apply,
		log:         log,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}
}

func (o *outbox) start(ctx context.Context) {
	go o.drain(ctx)
}

// enqueue adds an operation without blocking. Returns false when the
// queue is full; the caller logs and moves on.
func (o *outbox) enqueue(op indexOp) bool {
	select {
	case o.ops <- op:
		return true
	default:
		prometheus.RecordListingIndexOp(op.kind.String(), "dropped")
		return false
	}
}

func (o *outbox) drain(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case op := <-o.ops:
			o.process(ctx, op)
		}
	}
}

func (o *outbox) process(ctx context.Context, op indexOp) {
	var lastErr error
	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		err := o.apply(ctx, op)
		if err == nil {
			prometheus.RecordListingIndexOp(op.kind.String(), "ok")
			return
		}
		lastErr = err
		o.log.Warn("listing index operation failed",
			zap.String("operation", op.kind.String()),
			zap.String("listing_id", op.docID()),
			zap.Int("attempt", attempt),
			zap.Error(err))

		if attempt < o.maxAttempts {
			select {
			case <-ctx.Done():
				return
			case <-time.After(o.retryDelay):
			}
		}
	}

	prometheus.RecordListingIndexOp(op.kind.String(), "failed")
	o.log.Error("dropping listing index operation after retries",
		zap.String("operation", op.kind.String()),
		zap.String("listing_id", op.docID()),
		zap.Error(lastErr))
}
