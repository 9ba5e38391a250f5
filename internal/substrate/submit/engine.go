// Package submit signs and submits extrinsics with nonce management and bounded retries.
package submit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/overwatch-node/internal/clock"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/extrinsic"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/model"
)

// State is a step of the submission state machine.
type State uint8

const (
	StateIdle State = iota
	StateNonceFetch
	StateSign
	StateSubmit
	StateAwaitInclusion
	StateRetry
	StateSuccess
	StateFailure
)

var stateNames = [...]string{
	StateIdle:           "idle",
	StateNonceFetch:     "nonce_fetch",
	StateSign:           "sign",
	StateSubmit:         "submit",
	StateAwaitInclusion: "await_inclusion",
	StateRetry:          "retry",
	StateSuccess:        "success",
	StateFailure:        "failure",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Submission outcomes reported to Metrics.
const (
	OutcomeSuccess   = "success"
	OutcomeReverted  = "reverted"
	OutcomeExhausted = "exhausted"
	OutcomeFatal     = "fatal"
	OutcomeCanceled  = "canceled"
)

// Config is the retry policy.
type Config struct {
	// BlockInterval is the expected time between blocks.
	BlockInterval time.Duration
	// Margin is added to BlockInterval to form the backoff.
	Margin time.Duration
	// MaxAttempts bounds the initial attempt plus retries.
	MaxAttempts int
}

// DefaultConfig returns a 6s block interval, a 1s margin and 4 attempts.
func DefaultConfig() Config {
	return Config{
		BlockInterval: 6 * time.Second,
		Margin:        time.Second,
		MaxAttempts:   4,
	}
}

// Backoff returns the fixed wait between attempts.
func (c Config) Backoff() time.Duration {
	return c.BlockInterval + c.Margin
}

// Engine submits calls and blocks until they are included or fail terminally.
// It does not serialize submissions: callers sharing a signing identity must.
type Engine struct {
	conn        Connection
	finder      ReceiptFinder
	metrics     Metrics
	logger      *zap.Logger
	sleep       clock.SleepFunc
	backoff     time.Duration
	maxAttempts int
}

// NewEngine builds an Engine. If conn also implements ReceiptFinder it is used to resolve
// attempts whose outcome is unknown.
func NewEngine(conn Connection, metrics Metrics, logger *zap.Logger, cfg Config) (*Engine, error) {
	if conn == nil {
		return nil, errors.New("connection is required")
	}
	if metrics == nil {
		return nil, errors.New("submission metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	defaults := DefaultConfig()
	if cfg.BlockInterval <= 0 {
		cfg.BlockInterval = defaults.BlockInterval
	}
	if cfg.Margin <= 0 {
		cfg.Margin = defaults.Margin
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaults.MaxAttempts
	}

	finder, _ := conn.(ReceiptFinder)
	return &Engine{
		conn:        conn,
		finder:      finder,
		metrics:     metrics,
		logger:      logger,
		sleep:       clock.SleepWithContext,
		backoff:     cfg.Backoff(),
		maxAttempts: cfg.MaxAttempts,
	}, nil
}

// submission is the local state of one Submit call.
type submission struct {
	call    extrinsic.Call
	keypair Keypair
	logger  *zap.Logger

	attempt        int
	attemptStarted time.Time
	nonce          uint64
	signed         *model.SignedExtrinsic
	receipt        *model.Receipt

	// ambiguous is the last payload whose submission failed with an unknown outcome.
	ambiguous *model.SignedExtrinsic

	err      error
	failedIn State
	outcome  string
}

// Submit fetches the nonce, signs, submits and waits for inclusion of call, retrying
// transient failures. A reverted extrinsic is returned together with its receipt and is not retried.
func (e *Engine) Submit(ctx context.Context, call extrinsic.Call, keypair Keypair) (*model.Receipt, error) {
	if keypair == nil {
		return nil, &SubmissionError{Call: call.Name(), State: StateIdle, Err: errors.New("keypair is required")}
	}
	started := time.Now()
	s := &submission{
		call:    call,
		keypair: keypair,
		logger:  e.logger.With(zap.String("call", call.Name()), zap.String("signer", keypair.Address())),
		attempt: 1,
	}

	state := StateNonceFetch
	for {
		switch state {
		case StateSuccess:
			e.metrics.ObserveSubmission(call.Name(), OutcomeSuccess, s.attempt, started)
			s.logger.Info("extrinsic included",
				zap.Int("attempts", s.attempt),
				zap.String("block_hash", s.receipt.BlockHash),
				zap.Strings("events", s.receipt.EventNames()),
			)
			return s.receipt, nil
		case StateFailure:
			e.metrics.ObserveSubmission(call.Name(), s.outcome, s.attempt, started)
			return s.result()
		}

		if err := ctx.Err(); err != nil {
			state = s.terminal(state, OutcomeCanceled, err)
			continue
		}

		switch state {
		case StateNonceFetch:
			state = e.fetchNonce(ctx, s)
		case StateSign:
			state = e.sign(ctx, s)
		case StateSubmit:
			state = e.submit(ctx, s)
		case StateAwaitInclusion:
			state = e.awaitInclusion(ctx, s)
		case StateRetry:
			state = e.retry(ctx, s)
		default:
			state = s.terminal(state, OutcomeFatal, fmt.Errorf("unexpected state %s", state))
		}
	}
}

func (e *Engine) fetchNonce(ctx context.Context, s *submission) State {
	s.attemptStarted = time.Now()
	nonce, err := e.conn.AccountNonce(ctx, s.keypair.Address())
	if err != nil {
		return e.attemptFailed(ctx, s, StateNonceFetch, fmt.Errorf("get account nonce: %w", err))
	}
	s.nonce = nonce

	if s.ambiguous != nil {
		if receipt, ok := e.resolveAmbiguous(ctx, s); ok {
			s.receipt = receipt
			return StateAwaitInclusion
		}
	}
	return StateSign
}

func (e *Engine) sign(ctx context.Context, s *submission) State {
	signed, err := e.conn.CreateSignedExtrinsic(ctx, s.call, s.keypair, s.nonce)
	if err != nil {
		return e.attemptFailed(ctx, s, StateSign, fmt.Errorf("create signed extrinsic: %w", err))
	}
	s.signed = signed
	return StateSubmit
}

func (e *Engine) submit(ctx context.Context, s *submission) State {
	receipt, err := e.conn.SubmitExtrinsic(ctx, s.signed, true)
	if err != nil {
		if IsTransient(err) {
			s.ambiguous = s.signed
		}
		return e.attemptFailed(ctx, s, StateSubmit, fmt.Errorf("submit extrinsic: %w", err))
	}
	s.receipt = receipt
	return StateAwaitInclusion
}

func (e *Engine) awaitInclusion(ctx context.Context, s *submission) State {
	if s.receipt == nil {
		return e.attemptFailed(ctx, s, StateAwaitInclusion, Transient(errors.New("no receipt for submitted extrinsic")))
	}
	if !s.receipt.Success {
		err := fmt.Errorf("%w: %s", ErrRevertedExtrinsic, s.receipt.ErrorMessage)
		e.metrics.ObserveAttempt(s.call.Name(), err, s.attemptStarted)
		s.logger.Warn("extrinsic included but failed",
			zap.String("block_hash", s.receipt.BlockHash),
			zap.String("error_message", s.receipt.ErrorMessage),
		)
		return s.terminal(StateAwaitInclusion, OutcomeReverted, err)
	}
	e.metrics.ObserveAttempt(s.call.Name(), nil, s.attemptStarted)
	return StateSuccess
}

func (e *Engine) retry(ctx context.Context, s *submission) State {
	if s.attempt >= e.maxAttempts {
		s.logger.Error("giving up", zap.Int("attempts", s.attempt), zap.Error(s.err))
		return s.terminal(s.failedIn, OutcomeExhausted, fmt.Errorf("%w: %w", ErrAttemptsExhausted, s.err))
	}

	s.logger.Warn("attempt failed, retrying",
		zap.Int("attempt", s.attempt),
		zap.Stringer("state", s.failedIn),
		zap.Duration("backoff", e.backoff),
		zap.Error(s.err),
	)
	if err := e.sleep(ctx, e.backoff); err != nil {
		return s.terminal(StateRetry, OutcomeCanceled, err)
	}
	s.attempt++
	s.signed = nil
	s.receipt = nil
	return StateNonceFetch
}

// resolveAmbiguous checks whether the payload of an attempt with unknown outcome was
// included after all. A nonce that did not advance means it was not.
func (e *Engine) resolveAmbiguous(ctx context.Context, s *submission) (*model.Receipt, bool) {
	prev := s.ambiguous
	s.ambiguous = nil
	if s.nonce <= prev.Nonce {
		return nil, false
	}

	logger := s.logger.With(zap.String("previous_hash", prev.Hash), zap.Uint64("previous_nonce", prev.Nonce))
	if e.finder == nil {
		logger.Warn("nonce advanced after failed submission; previous attempt may have landed, resubmitting")
		return nil, false
	}
	receipt, err := e.finder.FindReceipt(ctx, prev.Hash)
	switch {
	case err == nil && receipt != nil:
		logger.Info("previous attempt was included, not resubmitting")
		return receipt, true
	case err == nil || errors.Is(err, ErrReceiptNotFound):
		logger.Warn("nonce advanced but previous attempt not found, resubmitting")
	default:
		logger.Warn("lookup of previous attempt failed, resubmitting", zap.Error(err))
	}
	return nil, false
}

func (e *Engine) attemptFailed(ctx context.Context, s *submission, state State, err error) State {
	e.metrics.ObserveAttempt(s.call.Name(), err, s.attemptStarted)
	if ctxErr := ctx.Err(); ctxErr != nil {
		if !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}
		s.logger.Warn("submission canceled", zap.Stringer("state", state), zap.Error(err))
		return s.terminal(state, OutcomeCanceled, err)
	}
	if !IsTransient(err) {
		s.logger.Error("non-retryable failure", zap.Stringer("state", state), zap.Error(err))
		return s.terminal(state, OutcomeFatal, err)
	}
	s.err = err
	s.failedIn = state
	return StateRetry
}

func (s *submission) terminal(state State, outcome string, err error) State {
	s.err = err
	s.failedIn = state
	s.outcome = outcome
	return StateFailure
}

func (s *submission) result() (*model.Receipt, error) {
	err := &SubmissionError{
		Call:     s.call.Name(),
		Attempts: s.attempt,
		State:    s.failedIn,
		Err:      s.err,
	}
	if s.outcome == OutcomeReverted {
		return s.receipt, err
	}
	return nil, err
}
