// Package cmd implements the dripctl command line application.
//
// Every mutating command follows the same cycle: load the snapshot from the
// store, apply one ledger operation, save it back and publish it to the
// shared glance location.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/drip"
	"github.com/etnz/drip/date"
	"github.com/etnz/drip/glance"
	"github.com/etnz/drip/logger"
	"github.com/etnz/drip/renderer"
	"github.com/etnz/drip/store"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Environment variables holding the default value of global flags. They are
// also passed on to extensions.
const (
	EnvStore     = "DRIP_STORE"
	EnvSharedDir = "DRIP_SHARED_DIR"
	EnvCurrency  = "DRIP_CURRENCY"
	EnvLogLevel  = "DRIP_LOG_LEVEL"
	// EnvToday overrides today's date, for reproducible examples.
	EnvToday = "DRIP_TODAY"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	storeDSN  = flag.String("store", envOr(EnvStore, store.DefaultDSN), "snapshot store: file:<path>, sqlite:<path> or firestore:<project>/<collection>")
	sharedDir = flag.String("shared", os.Getenv(EnvSharedDir), "directory shared with glance readers, publishing is disabled when empty")
	currency  = flag.String("currency", envOr(EnvCurrency, "USD"), "currency used to display amounts")
	logLevel  = flag.String("log-level", envOr(EnvLogLevel, "warn"), "log level: debug, info, warn or error")
)

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// Commands lists every dripctl subcommand with its help group.
var Commands = []struct {
	Group   string
	Command subcommands.Command
}{
	{"spending", &expenseCmd{}},
	{"spending", &editExpenseCmd{}},
	{"spending", &deleteExpenseCmd{}},
	{"spending", &incomeCmd{}},
	{"spending", &allowanceCmd{}},

	{"cash", &transferCmd{typ: drip.Withdraw}},
	{"cash", &transferCmd{typ: drip.Deposit}},
	{"cash", &editTransferCmd{}},
	{"cash", &deleteTransferCmd{}},

	{"buckets", &addEarmarkCmd{}},
	{"buckets", &payEarmarkCmd{}},
	{"buckets", &removeEarmarkCmd{}},
	{"buckets", &addBucketCmd{}},
	{"buckets", &removeBucketCmd{}},

	{"reconciliation", &correctCmd{}},
	{"reconciliation", &reconcileCmd{}},
	{"reconciliation", &editAdjustmentCmd{}},
	{"reconciliation", &deleteAdjustmentCmd{}},
	{"reconciliation", &recalcCmd{}},
	{"reconciliation", &seedCmd{}},

	{"reports", &statusCmd{}},
	{"reports", &logsCmd{}},
	{"reports", &exportCmd{}},
	{"reports", &glanceCmd{}},
	{"reports", &serveCmd{}},
	{"reports", &topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, e := range Commands {
		c.Register(e.Command, e.Group)
	}
}

// NewContext returns a context carrying the logger configured by the global flags.
func NewContext(ctx context.Context) context.Context {
	level, err := logger.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
	}
	return logger.ToContext(ctx, logger.New(level, os.Stderr))
}

// today is the reference day of commands, DRIP_TODAY when set.
func today() date.Date {
	if s := os.Getenv(EnvToday); s != "" {
		if d, err := date.Parse(s); err == nil {
			return d
		}
	}
	return date.Today()
}

// parseDay parses a day flag, empty means today.
func parseDay(s string) (date.Date, error) {
	if s == "" {
		return today(), nil
	}
	return date.ParseFrom(s, today())
}

// parseAmount parses a required amount flag.
func parseAmount(name, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("-%s is required", name)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q for -%s: %w", s, name, err)
	}
	return d, nil
}

// parseID parses a required identity flag.
func parseID(name, s string) (drip.ID, error) {
	if s == "" {
		return drip.ID{}, fmt.Errorf("-%s is required", name)
	}
	id, err := drip.ParseID(s)
	if err != nil {
		return drip.ID{}, fmt.Errorf("invalid identity %q for -%s: %w", s, name, err)
	}
	return id, nil
}

// money formats an amount in the display currency.
func money(d decimal.Decimal) string { return renderer.M(d, *currency).String() }

// signed formats an amount with an explicit sign.
func signed(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + money(d)
	}
	return money(d)
}

// usageError reports a command line mistake.
func usageError(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitUsageError
}

// openStore opens the store selected by the global flags.
func openStore(ctx context.Context) (store.Store, error) {
	return store.Open(ctx, *storeDSN)
}

// publisher returns where snapshots are published, nil when disabled.
func publisher() glance.Publisher {
	if *sharedDir == "" {
		return nil
	}
	return glance.DirPublisher{Root: *sharedDir}
}

// loadSnapshot reads the current snapshot for read-only commands.
func loadSnapshot(ctx context.Context) (*drip.Snapshot, error) {
	st, err := openStore(ctx)
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return st.Load(ctx), nil
}

// mutate loads the snapshot, applies op, saves the result and publishes it.
// Nothing is saved if op fails.
func mutate(ctx context.Context, op func(s *drip.Snapshot) error) subcommands.ExitStatus {
	st, err := openStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	s := st.Load(ctx)
	if err := op(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", explain(err))
		return subcommands.ExitFailure
	}
	if err := st.Save(ctx, s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := publish(ctx, publisher(), s); err != nil {
		// the ledger is saved, glance readers will catch up on the next publish
		logger.FromContext(ctx).Warn("failed to publish snapshot", "error", err)
	}
	return subcommands.ExitSuccess
}

func publish(ctx context.Context, p glance.Publisher, s *drip.Snapshot) error {
	if p == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := drip.EncodeSnapshot(&buf, s); err != nil {
		return err
	}
	return p.Publish(ctx, buf.Bytes())
}

// explain turns the ledger sentinel errors into advice.
func explain(err error) error {
	switch {
	case errors.Is(err, drip.ErrUnknownBucket):
		return fmt.Errorf("%w (see dripctl status for bucket names)", err)
	case errors.Is(err, drip.ErrNonPositiveAmount):
		return fmt.Errorf("%w (amounts are always positive, the command tells the direction)", err)
	}
	return err
}
