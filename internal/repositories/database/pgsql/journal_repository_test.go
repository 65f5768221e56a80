package pgsql

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awtech/cashdesk/internal/core/domain"
)

func TestLinesInInsertOrder(t *testing.T) {
	lines := []domain.JournalLine{
		{LineID: "line-c", AccountID: "acc-1", Amount: decimal.NewFromInt(10), LineType: domain.Debit},
		{LineID: "line-a", AccountID: "acc-2", Amount: decimal.NewFromInt(10), LineType: domain.Credit},
		{LineID: "line-b", AccountID: "acc-3", Amount: decimal.NewFromInt(5), LineType: domain.Debit},
	}

	ordered := linesInInsertOrder(lines)

	require.Len(t, ordered, 3)
	assert.Equal(t, "line-a", ordered[0].LineID)
	assert.Equal(t, "line-b", ordered[1].LineID)
	assert.Equal(t, "line-c", ordered[2].LineID)

	// The input slice keeps the order the caller built it in.
	assert.Equal(t, "line-c", lines[0].LineID)
	assert.Equal(t, "line-a", lines[1].LineID)
	assert.Equal(t, "line-b", lines[2].LineID)
}

func TestLinesInInsertOrder_Empty(t *testing.T) {
	assert.Empty(t, linesInInsertOrder(nil))
}
