package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/overwatch-node/internal/metrics"
	"github.com/goodnatureofminers/overwatch-node/internal/service"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/chaindata"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/extrinsic"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/model"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/rpc"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/submit"
)

type config struct {
	RPCURL            string        `long:"rpc-url" env:"OVERWATCH_RPC_URL" description:"node websocket URL" default:"ws://127.0.0.1:9944"`
	Secret            string        `long:"secret" env:"OVERWATCH_SECRET" description:"signing secret (mnemonic, seed or dev URI)"`
	Chain             string        `long:"chain" env:"OVERWATCH_CHAIN" description:"chain name used in metric labels" default:"hypertensor"`
	Network           uint16        `long:"network" env:"OVERWATCH_NETWORK" description:"SS58 network id" default:"42"`
	BlockInterval     time.Duration `long:"block-interval" env:"OVERWATCH_BLOCK_INTERVAL" description:"expected block interval" default:"6s"`
	Margin            time.Duration `long:"margin" env:"OVERWATCH_MARGIN" description:"added to the block interval between retries" default:"1s"`
	MaxAttempts       int           `long:"max-attempts" env:"OVERWATCH_MAX_ATTEMPTS" description:"attempts per submission" default:"4"`
	RequestsPerSecond int           `long:"requests-per-second" env:"OVERWATCH_REQUESTS_PER_SECOND" description:"RPC rate limit, 0 disables it" default:"0"`
	LookbackBlocks    uint64        `long:"lookback-blocks" env:"OVERWATCH_LOOKBACK_BLOCKS" description:"blocks scanned when resolving an ambiguous submission" default:"20"`
	Workers           int           `long:"workers" env:"OVERWATCH_WORKERS" description:"concurrent record reads" default:"4"`
	MetricsAddr       string        `long:"metrics-addr" env:"OVERWATCH_METRICS_ADDR" description:"address for metrics server, empty disables it"`

	Args struct {
		Command string   `positional-arg-name:"command" description:"block-number | subnet-nodes | included-nodes | rewards | register | activate | add-stake | remove-stake | submit-weights" required:"true"`
		Rest    []string `positional-arg-name:"args"`
	} `positional-args:"yes"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("overwatch node failed", zap.String("command", cfg.Args.Command), zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	registry, err := chaindata.NewRegistry()
	if err != nil {
		return fmt.Errorf("init type registry: %w", err)
	}
	node, err := rpc.Dial(rpc.Config{
		URL:               cfg.RPCURL,
		RequestsPerSecond: cfg.RequestsPerSecond,
	}, metrics.NewRPCClient(cfg.Chain), logger)
	if err != nil {
		return fmt.Errorf("init node connection: %w", err)
	}
	defer node.Close()

	client := rpc.NewClient(node, registry, logger, cfg.LookbackBlocks)
	engine, err := submit.NewEngine(client, metrics.NewSubmission(cfg.Chain), logger, submit.Config{
		BlockInterval: cfg.BlockInterval,
		Margin:        cfg.Margin,
		MaxAttempts:   cfg.MaxAttempts,
	})
	if err != nil {
		return fmt.Errorf("init submission engine: %w", err)
	}

	var keypair submit.Keypair
	if cfg.Secret != "" {
		kr, err := rpc.NewKeyring(cfg.Secret, cfg.Network)
		if err != nil {
			return fmt.Errorf("init keyring: %w", err)
		}
		logger.Info("signing identity loaded",
			zap.String("address", kr.Address()),
			zap.String("public_key", codec.HexEncodeToString(kr.PublicKey())),
		)
		keypair = kr
	}

	svc, err := service.NewOverwatchService(
		engine,
		client,
		chaindata.NewNormalizer(registry, cfg.Network),
		keypair,
		logger,
		cfg.Workers,
	)
	if err != nil {
		return err
	}
	return dispatch(ctx, svc, logger, cfg.Args.Command, cfg.Args.Rest)
}

func dispatch(ctx context.Context, svc *service.OverwatchService, logger *zap.Logger, command string, args []string) error {
	switch command {
	case "block-number":
		number, err := svc.BlockNumber(ctx)
		if err != nil {
			return err
		}
		logger.Info("block number", zap.Uint64("number", number))
		return nil

	case "subnet-nodes":
		ids, err := parseSubnetIDs(args)
		if err != nil {
			return err
		}
		bySubnet, err := svc.SubnetNodesBySubnet(ctx, ids)
		if err != nil {
			return err
		}
		for _, id := range ids {
			logger.Info("subnet nodes", zap.Uint32("subnet_id", id), zap.Any("nodes", bySubnet[id]))
		}
		return nil

	case "included-nodes":
		if err := wantArgs(command, args, 1); err != nil {
			return err
		}
		id, err := parseUint32(args[0])
		if err != nil {
			return err
		}
		nodes, err := svc.IncludedSubnetNodes(ctx, id)
		if err != nil {
			return err
		}
		logger.Info("included subnet nodes", zap.Uint32("subnet_id", id), zap.Any("nodes", nodes))
		return nil

	case "rewards":
		if err := wantArgs(command, args, 2); err != nil {
			return err
		}
		id, err := parseUint32(args[0])
		if err != nil {
			return err
		}
		epoch, err := parseUint32(args[1])
		if err != nil {
			return err
		}
		rewards, err := svc.RewardsData(ctx, id, epoch)
		if err != nil {
			return err
		}
		logger.Info("rewards data", zap.Uint32("subnet_id", id), zap.Uint32("epoch", epoch), zap.Any("rewards", rewards))
		return nil

	case "register":
		if err := wantArgs(command, args, 3); err != nil {
			return err
		}
		stake, err := parseAmount(args[2])
		if err != nil {
			return err
		}
		return report(logger)(svc.RegisterOverwatchNode(ctx, extrinsic.RegisterOverwatchNodeParams{
			Hotkey: args[0],
			PeerID: args[1],
			Stake:  stake,
		}))

	case "activate":
		if err := wantArgs(command, args, 1); err != nil {
			return err
		}
		id, err := parseUint32(args[0])
		if err != nil {
			return err
		}
		return report(logger)(svc.ActivateOverwatchNode(ctx, id))

	case "add-stake", "remove-stake":
		if err := wantArgs(command, args, 1); err != nil {
			return err
		}
		amount, err := parseAmount(args[0])
		if err != nil {
			return err
		}
		if command == "add-stake" {
			return report(logger)(svc.AddToOverwatchStake(ctx, amount))
		}
		return report(logger)(svc.RemoveOverwatchStake(ctx, amount))

	case "submit-weights":
		if err := wantArgs(command, args, 1); err != nil {
			return err
		}
		weights, err := codec.HexDecodeString(args[0])
		if err != nil {
			return fmt.Errorf("weights: %w", err)
		}
		return report(logger)(svc.SubmitBenchmarkWeights(ctx, weights))

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func report(logger *zap.Logger) func(*model.Receipt, error) error {
	return func(receipt *model.Receipt, err error) error {
		if receipt != nil {
			logger.Info("receipt",
				zap.String("extrinsic_hash", receipt.ExtrinsicHash),
				zap.String("block_hash", receipt.BlockHash),
				zap.Uint64("block_number", receipt.BlockNumber),
				zap.Bool("success", receipt.Success),
				zap.Strings("events", receipt.EventNames()),
				zap.String("error", receipt.ErrorMessage),
			)
		}
		return err
	}
}

func wantArgs(command string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s expects %d argument(s), got %d", command, n, len(args))
	}
	return nil
}

func parseSubnetIDs(args []string) ([]uint32, error) {
	if len(args) == 0 {
		return nil, errors.New("at least one subnet id is required")
	}
	ids := make([]uint32, 0, len(args))
	for _, arg := range args {
		id, err := parseUint32(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return uint32(v), nil
}

func parseAmount(s string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
