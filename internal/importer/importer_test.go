package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/bank-system/internal/ledger"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestImport_CSVCleaning(t *testing.T) {
	// One good row per failure mode that must drop, plus two keepers with
	// out-of-order dates.
	path := writeFile(t, "ops.csv",
		"account_number,operation,amount,balance_after,status,date\n"+
			"ACC-1000,Diposit,200,300,success,2025-01-02 10:00\n"+ // keeper, misspelled kind
			"ACC-1000,withtraw,100,100,SUCCESS,2025-01-01 10:00\n"+ // keeper, earlier date
			"ACC-2000,deposit,50,150,success,2025-01-01 10:00\n"+ // other account
			"ACC-1000,transfer,50,150,success,2025-01-01 10:00\n"+ // kind not allowed
			"ACC-1000,deposit,abc,150,success,2025-01-01 10:00\n"+ // non-numeric amount
			"ACC-1000,deposit,-5,150,success,2025-01-01 10:00\n"+ // non-positive amount
			"ACC-1000,deposit,50,oops,success,2025-01-01 10:00\n"+ // non-numeric balance
			"ACC-1000,deposit,50,150,failed,2025-01-01 10:00\n"+ // status without success
			"ACC-1000,deposit,50,150,success,yesterday\n"+ // unparseable date
			"ACC-1000,,50,150,success,2025-01-01 10:00\n") // missing operation

	l := ledger.New()
	final, err := Import(context.Background(), path, "ACC-1000",
		[]string{ledger.OpDeposit, ledger.OpWithdraw}, l)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	all := l.All()
	if len(all) != 2 {
		t.Fatalf("committed %d records, want 2", len(all))
	}
	// Commit order is date-ascending: the withtraw row predates the Diposit row.
	if all[0].OpType != ledger.OpWithdraw || all[1].OpType != ledger.OpDeposit {
		t.Errorf("kinds = [%s %s], want [withdraw deposit]", all[0].OpType, all[1].OpType)
	}
	if !final.Equal(decimal.NewFromInt(300)) {
		t.Errorf("final balance = %s, want 300 (latest-dated row)", final)
	}
}

func TestImport_SpecExample(t *testing.T) {
	path := writeFile(t, "ops.csv",
		"account_number,operation,amount,balance_after,status,date\n"+
			"ACC-1000,Diposit,50,150,SUCCESS,2025-01-01 10:00\n"+
			"ACC-1000,withdraw,-5,145,SUCCESS,2025-01-02 10:00\n")

	l := ledger.New()
	final, err := Import(context.Background(), path, "ACC-1000",
		[]string{ledger.OpDeposit, ledger.OpWithdraw}, l)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("committed %d records, want 1", l.Len())
	}
	rec := l.All()[0]
	if rec.OpType != ledger.OpDeposit {
		t.Errorf("kind = %q, want normalized deposit", rec.OpType)
	}
	if rec.Status != "SUCCESS" {
		t.Errorf("status = %q, want verbatim SUCCESS", rec.Status)
	}
	if !final.Equal(decimal.NewFromInt(150)) {
		t.Errorf("final balance = %s, want 150", final)
	}
}

func TestImport_JSON(t *testing.T) {
	path := writeFile(t, "ops.json", `[
		{"account_number": "ACC-1000", "operation": "deposit", "amount": "50", "balance_after": "150", "status": "was success yesterday", "date": "2025-01-01 10:00"},
		{"account_number": "ACC-1000", "operation": "interest", "amount": 7.5, "balance_after": 157.5, "status": "success", "date": "2025-01-02 10:00"},
		{"account_number": "ACC-1000", "operation": "deposit", "amount": 10, "balance_after": 167.5, "status": 42, "date": "2025-01-03 10:00"}
	]`)

	l := ledger.New()
	final, err := Import(context.Background(), path, "ACC-1000",
		[]string{ledger.OpDeposit, ledger.OpWithdraw, ledger.OpInterest}, l)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	all := l.All()
	if len(all) != 2 {
		t.Fatalf("committed %d records, want 2 (non-string status must drop)", len(all))
	}
	// Status strings that pass the substring check are stored verbatim.
	if all[0].Status != "was success yesterday" {
		t.Errorf("status = %q, want literal passthrough", all[0].Status)
	}
	if !final.Equal(decimal.NewFromFloat(157.5)) {
		t.Errorf("final balance = %s, want 157.5", final)
	}
}

func TestImport_EmptyResult(t *testing.T) {
	path := writeFile(t, "ops.csv",
		"account_number,operation,amount,balance_after,status,date\n"+
			"ACC-2000,deposit,50,150,success,2025-01-01 10:00\n")

	l := ledger.New()
	final, err := Import(context.Background(), path, "ACC-1000",
		[]string{ledger.OpDeposit}, l)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if !final.IsZero() {
		t.Errorf("final balance = %s, want 0", final)
	}
	if l.Len() != 0 {
		t.Errorf("committed %d records, want 0", l.Len())
	}
}

func TestImport_NegativeTailAbortsWholeImport(t *testing.T) {
	path := writeFile(t, "ops.csv",
		"account_number,operation,amount,balance_after,status,date\n"+
			"ACC-1000,deposit,50,100,success,2025-01-01 10:00\n"+
			"ACC-1000,withdraw,200,-10,success,2025-01-02 10:00\n")

	l := ledger.New()
	_, err := Import(context.Background(), path, "ACC-1000",
		[]string{ledger.OpDeposit, ledger.OpWithdraw}, l)
	if !errors.Is(err, ErrNegativeBalanceAfterImport) {
		t.Fatalf("want ErrNegativeBalanceAfterImport, got %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("aborted import committed %d records, want 0", l.Len())
	}
}

func TestImport_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, "ops.txt", "whatever")

	l := ledger.New()
	_, err := Import(context.Background(), path, "ACC-1000", []string{ledger.OpDeposit}, l)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("want ErrUnsupportedFormat, got %v", err)
	}
	if !errors.Is(err, ErrImport) {
		t.Errorf("unsupported format must also wrap ErrImport, got %v", err)
	}
}

func TestImport_LoadErrorsWrapped(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.csv")
			},
		},
		{
			name: "malformed json",
			path: func(t *testing.T) string {
				return writeFile(t, "ops.json", "{not json")
			},
		},
		{
			name: "ragged csv",
			path: func(t *testing.T) string {
				return writeFile(t, "ops.csv",
					"account_number,operation,amount\nACC-1000,deposit\n")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ledger.New()
			_, err := Import(context.Background(), tt.path(t), "ACC-1000", []string{ledger.OpDeposit}, l)
			if !errors.Is(err, ErrImport) {
				t.Errorf("want ErrImport, got %v", err)
			}
		})
	}
}

func TestDeriveBalanceStep_InvalidBalance(t *testing.T) {
	st := &state{
		cleaned: []operation{{
			Kind:       ledger.OpDeposit,
			Amount:     decimal.NewFromInt(10),
			rawBalance: struct{}{},
			Status:     "success",
			Date:       time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		}},
	}
	err := (&deriveBalanceStep{}).Execute(context.Background(), st)
	if !errors.Is(err, ErrInvalidImportedBalance) {
		t.Errorf("want ErrInvalidImportedBalance, got %v", err)
	}
}

func TestNormalizeKind(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"deposit", "deposit"},
		{"Diposit", "deposit"},
		{"WITHDRAW", "withdraw"},
		{"withtraw", "withdraw"},
		{"Interest", "interest"},
		{"transfer", "transfer"}, // unrecognized names pass through unchanged
		{"Transfer", "Transfer"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalizeKind(tt.input); got != tt.want {
				t.Errorf("normalizeKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
