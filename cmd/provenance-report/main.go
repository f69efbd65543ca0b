// Command provenance-report writes the provenance report of a confirmed wallet transaction.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/metrics"
	observed "github.com/goodnatureofminers/blockinsight7000-provenance/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/provenance/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/provenance/model"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/provenance/report"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/provenance/service"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

type config struct {
	TxID           string        `long:"txid" env:"PROVENANCE_TXID" description:"confirmed transaction id" required:"true"`
	Recipient      string        `long:"recipient" env:"PROVENANCE_RECIPIENT" description:"address the payment was sent to" required:"true"`
	Network        model.Network `long:"network" env:"PROVENANCE_NETWORK" description:"network name" default:"regtest"`
	RPCURL         string        `long:"rpc-url" env:"PROVENANCE_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:18443"`
	RPCUser        string        `long:"rpc-user" env:"PROVENANCE_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword    string        `long:"rpc-password" env:"PROVENANCE_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCRate        int           `long:"rpc-rate" env:"PROVENANCE_RPC_RATE" description:"max RPC calls per second, 0 disables the limit" default:"0"`
	Wallet         string        `long:"wallet" env:"PROVENANCE_WALLET" description:"wallet that tracked the transaction" default:"Miner"`
	Out            string        `long:"out" env:"PROVENANCE_OUT" description:"report file path" default:"out.txt"`
	PushgatewayURL string        `long:"pushgateway-url" env:"PROVENANCE_PUSHGATEWAY_URL" description:"Prometheus Pushgateway URL for run metrics"`
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

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	runErr := run(ctx, cfg, logger)
	if cfg.PushgatewayURL != "" {
		pushMetrics(cfg.PushgatewayURL, logger)
	}
	if runErr != nil {
		logger.Fatal("provenance report failed", zap.Error(runErr))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	txid, err := chainhash.NewHashFromStr(cfg.TxID)
	if err != nil {
		return fmt.Errorf("parse txid: %w", err)
	}
	decoder, err := bitcoin.NewScriptDecoder(cfg.Network)
	if err != nil {
		return fmt.Errorf("init script decoder: %w", err)
	}
	recipient, err := decoder.ParseAddress(cfg.Recipient)
	if err != nil {
		return fmt.Errorf("recipient: %w", err)
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RPCRate > 0 {
		limiter = ratelimit.New(cfg.RPCRate)
	}

	nodeClient, err := newRPCClient(cfg.RPCURL, "", cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init node rpc client: %w", err)
	}
	defer func() {
		nodeClient.Shutdown()
		nodeClient.WaitForShutdown()
	}()
	walletClient, err := newRPCClient(cfg.RPCURL, cfg.Wallet, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init wallet rpc client: %w", err)
	}
	defer func() {
		walletClient.Shutdown()
		walletClient.WaitForShutdown()
	}()

	ledger := bitcoin.NewLedger(
		observed.NewObservedClient(nodeClient, metrics.NewRPCClient("node", cfg.Network), limiter),
		observed.NewObservedClient(walletClient, metrics.NewRPCClient("wallet", cfg.Network), limiter),
	)
	writer := report.NewFileWriter(cfg.Out)

	svc, err := service.NewProvenance(ledger, decoder, writer, metrics.NewPipeline(cfg.Network), logger.Named("provenance"))
	if err != nil {
		return err
	}
	if _, err := svc.Run(ctx, *txid, recipient); err != nil {
		return err
	}

	logger.Info("transaction details written", zap.String("path", writer.Path()))
	return nil
}

func newRPCClient(rawURL, wallet, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	host := parsed.Host
	if wallet != "" {
		host = strings.TrimSuffix(host, "/") + "/wallet/" + url.PathEscape(wallet)
	}

	cfg := &rpcclient.ConnConfig{
		Host:         host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	return rpcclient.New(cfg, nil)
}

func pushMetrics(gatewayURL string, logger *zap.Logger) {
	err := push.New(gatewayURL, "provenance_report").
		Gatherer(prometheus.DefaultGatherer).
		Push()
	if err != nil {
		logger.Error("failed to push metrics", zap.Error(err))
	}
}
