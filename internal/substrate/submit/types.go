package submit

import (
	"context"
	"time"

	"github.com/goodnatureofminers/overwatch-node/internal/substrate/extrinsic"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Connection is a node client. Retryable failures must satisfy IsTransient.
	Connection interface {
		BlockNumber(ctx context.Context) (uint64, error)
		AccountNonce(ctx context.Context, address string) (uint64, error)
		CreateSignedExtrinsic(ctx context.Context, call extrinsic.Call, keypair Keypair, nonce uint64) (*model.SignedExtrinsic, error)
		SubmitExtrinsic(ctx context.Context, ext *model.SignedExtrinsic, waitForInclusion bool) (*model.Receipt, error)
	}
	// ReceiptFinder looks up an already included extrinsic by hash.
	ReceiptFinder interface {
		FindReceipt(ctx context.Context, extrinsicHash string) (*model.Receipt, error)
	}
	// Keypair is the signing identity. Signing itself is done by the Connection.
	Keypair interface {
		Address() string
	}
	Metrics interface {
		ObserveAttempt(call string, err error, started time.Time)
		ObserveSubmission(call string, outcome string, attempts int, started time.Time)
	}
)
