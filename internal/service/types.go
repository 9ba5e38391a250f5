package service

import (
	"context"

	"github.com/goodnatureofminers/overwatch-node/internal/substrate/extrinsic"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/model"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/submit"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Submitter signs and submits calls and retries node reads.
	Submitter interface {
		Submit(ctx context.Context, call extrinsic.Call, keypair submit.Keypair) (*model.Receipt, error)
		BlockNumber(ctx context.Context) (uint64, error)
		Retry(ctx context.Context, operation string, fn func(ctx context.Context) error) error
	}
	// RecordSource returns SCALE-encoded records from custom node RPCs.
	RecordSource interface {
		RecordBytes(ctx context.Context, method string, params ...any) ([]byte, error)
	}
)
