package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dvloznov/bank-system/internal/account"
	"github.com/dvloznov/bank-system/internal/analyzer"
	"github.com/dvloznov/bank-system/internal/config"
	"github.com/dvloznov/bank-system/internal/ledger"
	"github.com/dvloznov/bank-system/internal/logger"
	"github.com/dvloznov/bank-system/internal/visualizer"
)

func main() {
	// Missing .env is fine; system env vars still apply.
	_ = godotenv.Load()
	cfg := config.Load()
	account.SeedCounter(cfg.NumberSeed)
	log := logger.New(cfg.LogLevel)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "demo":
		runDemo(log)
	case "import":
		runImport(log)
	case "rank":
		runRank(log)
	case "chart":
		runChart(log, cfg)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Bank System CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  bank <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  demo      Run a scripted demo of accounts and operations")
	fmt.Println("  import    Import an operation history file into an account")
	fmt.Println("  rank      Import a history file and rank its top operations")
	fmt.Println("  chart     Import a history file and render a balance chart")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'bank <command> -h' for more information on a command.")
}

// bankAccount is the surface shared by both account types, with the
// import entrypoint bound to the type's allowed operation kinds.
type bankAccount interface {
	ImportOperations(ctx context.Context, source string) error
	History() []ledger.Record
	Holder() string
	Number() string
	Balance() decimal.Decimal
	Info() account.Info
}

func newAccount(accountType, holder, number string, balance decimal.Decimal) (bankAccount, error) {
	switch accountType {
	case "checking":
		return account.NewChecking(holder, balance, number)
	case "savings":
		return account.NewSavings(holder, balance, number)
	default:
		return nil, fmt.Errorf("unknown account type %q (want checking or savings)", accountType)
	}
}

func runDemo(log zerolog.Logger) {
	checking, err := account.NewChecking("Ivan Petrov", decimal.NewFromInt(100), "")
	if err != nil {
		log.Fatal().Err(err).Msg("Creating checking account failed")
	}
	savings, err := account.NewSavings("Anna Petrova", decimal.NewFromInt(200), "")
	if err != nil {
		log.Fatal().Err(err).Msg("Creating savings account failed")
	}

	if err := checking.Deposit(decimal.NewFromInt(50)); err != nil {
		log.Error().Err(err).Msg("Deposit failed")
	}
	if err := checking.Withdraw(decimal.NewFromInt(30)); err != nil {
		log.Error().Err(err).Msg("Withdraw failed")
	}
	// Deliberately overdraws; recorded in the ledger as a failed attempt.
	if err := checking.Withdraw(decimal.NewFromInt(1000)); err != nil {
		log.Warn().Err(err).Msg("Withdraw rejected")
	}

	if err := savings.ApplyInterest(decimal.NewFromInt(10)); err != nil {
		log.Error().Err(err).Msg("Applying interest failed")
	}
	// Exceeds the 50% savings cap; rejected before reaching the ledger.
	if err := savings.Withdraw(decimal.NewFromInt(150)); err != nil {
		log.Warn().Err(err).Msg("Withdraw rejected")
	}

	for _, acc := range []bankAccount{checking, savings} {
		printAccount(acc)
	}
}

func runImport(log zerolog.Logger) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	file := fs.String("file", "", "Path to a CSV or JSON history file")
	accountType := fs.String("type", "checking", "Account type: checking or savings")
	holder := fs.String("holder", "Ivan Petrov", "Account holder name")
	number := fs.String("number", "", "Account number (ACC-<integer>); generated when empty")
	fs.Parse(os.Args[2:])

	if *file == "" {
		log.Fatal().Msg("Error: --file is required")
	}

	acc := mustImport(log, *file, *accountType, *holder, *number)
	printAccount(acc)
}

func runRank(log zerolog.Logger) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	file := fs.String("file", "", "Path to a CSV or JSON history file")
	accountType := fs.String("type", "checking", "Account type: checking or savings")
	holder := fs.String("holder", "Ivan Petrov", "Account holder name")
	number := fs.String("number", "", "Account number (ACC-<integer>); generated when empty")
	sortBy := fs.String("by", analyzer.SortByAmount, "Sort key: amount or date")
	n := fs.Int("n", 5, "Number of operations to show")
	fs.Parse(os.Args[2:])

	if *file == "" {
		log.Fatal().Msg("Error: --file is required")
	}

	acc := mustImport(log, *file, *accountType, *holder, *number)

	top, err := analyzer.Rank(acc, *n, *sortBy)
	if err != nil {
		log.Fatal().Err(err).Msg("Ranking failed")
	}

	fmt.Printf("\n=== Top %d operations by %s ===\n", len(top), *sortBy)
	for i, rec := range top {
		fmt.Printf("%d. %-8s %10s  at %s  balance %s\n",
			i+1, rec.OpType, rec.Amount.StringFixed(2),
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.BalanceAfter.StringFixed(2))
	}
}

func runChart(log zerolog.Logger, cfg config.Config) {
	fs := flag.NewFlagSet("chart", flag.ExitOnError)
	file := fs.String("file", "", "Path to a CSV or JSON history file")
	accountType := fs.String("type", "checking", "Account type: checking or savings")
	holder := fs.String("holder", "Ivan Petrov", "Account holder name")
	number := fs.String("number", "", "Account number (ACC-<integer>); generated when empty")
	out := fs.String("out", cfg.ChartOutput, "Output HTML file")
	fs.Parse(os.Args[2:])

	if *file == "" {
		log.Fatal().Msg("Error: --file is required")
	}

	acc := mustImport(log, *file, *accountType, *holder, *number)

	if err := visualizer.RenderHistoryFile(acc, *out); err != nil {
		log.Fatal().Err(err).Msg("Rendering chart failed")
	}
	fmt.Printf("Chart written to %s\n", *out)
}

func mustImport(log zerolog.Logger, file, accountType, holder, number string) bankAccount {
	acc, err := newAccount(accountType, holder, number, decimal.Zero)
	if err != nil {
		log.Fatal().Err(err).Msg("Creating account failed")
	}

	ctx := logger.WithContext(context.Background(), log)
	log.Info().Str("file", file).Str("account_number", acc.Number()).Msg("Importing operations")

	if err := acc.ImportOperations(ctx, file); err != nil {
		log.Fatal().Err(err).Msg("Import failed")
	}
	return acc
}

func printAccount(acc bankAccount) {
	info := acc.Info()
	fmt.Printf("\n=== Account %s ===\n", info.AccountNumber)
	fmt.Printf("Type:    %s\n", info.AccountType)
	fmt.Printf("Holder:  %s\n", info.Holder)
	fmt.Printf("Balance: %s\n", info.Balance.StringFixed(2))

	history := acc.History()
	fmt.Printf("\nOperations (%d):\n", len(history))
	for i, rec := range history {
		fmt.Printf("%d. %-8s %10s  at %s  balance %s  [%s]\n",
			i+1, rec.OpType, rec.Amount.StringFixed(2),
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.BalanceAfter.StringFixed(2), rec.Status)
	}
}
