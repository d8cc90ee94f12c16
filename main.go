package main

import (
	"os"
	"strconv"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"memberfund/contract"
	"memberfund/sdk"
	"memberfund/storage"
)

// envInt64 reads a millisecond duration from the environment, falling back
// when unset or malformed.
func envInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return val
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	dir := os.Getenv("FUND_DATA_DIR")
	if dir == "" {
		dir = "./data"
	}

	state, err := storage.Open(dir, log)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("cannot open state store")
	}
	defer func() {
		if err := state.Close(); err != nil {
			log.Error().Err(err).Msg("state store close")
		}
	}()

	cfg := contract.Config{
		ApprovedLedger:     sdk.Address(os.Getenv("FUND_LEDGER_ADDR")),
		Treasury:           sdk.Address(os.Getenv("FUND_TREASURY_ADDR")),
		PeriodDuration:     envInt64("FUND_PERIOD_DURATION_MS", 10_000),
		VotingPeriodLength: envInt64("FUND_VOTING_PERIOD_MS", 100_000),
		GracePeriodLength:  envInt64("FUND_GRACE_PERIOD_MS", 10_000),
	}

	// standalone runs settle transfers against a local in-memory ledger;
	// a deployment swaps in a client for the approved ledger address
	dao := contract.New(cfg, state, sdk.NewMockLedger(), clock.New(), log)

	log.Info().
		Uint64("balance", dao.Balance()).
		Uint64("locked", dao.LockedFunds()).
		Uint64("total_shares", dao.TotalShares()).
		Int("members", len(dao.Members())).
		Uint64("next_proposal", dao.NextProposalID()).
		Ints64("pending_tx", toInt64s(dao.PendingTransactions())).
		Msg("fund engine ready")
}

func toInt64s(ids []uint64) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
