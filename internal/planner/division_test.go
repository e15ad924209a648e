package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDivision_Reconstruction(t *testing.T) {
	for dividend := 10; dividend <= 999; dividend++ {
		for divisor := 2; divisor <= 9; divisor++ {
			plan, err := PlanDivision(dividend, divisor)
			require.NoError(t, err)

			quotient := 0
			for _, st := range plan.Steps {
				require.Equal(t, st.Chunk, st.Product+st.Remainder, "%d/%d step %+v", dividend, divisor, st)
				require.True(t, st.Remainder >= 0 && st.Remainder < divisor, "%d/%d step %+v", dividend, divisor, st)
				require.True(t, st.QDigit >= 0 && st.QDigit <= 9, "%d/%d step %+v", dividend, divisor, st)
				quotient = quotient*10 + st.QDigit
			}

			res := plan.Result
			require.Equal(t, dividend/divisor, quotient)
			require.Equal(t, quotient, res.Quotient)
			require.Equal(t, dividend, res.Quotient*divisor+res.Remainder)
			require.True(t, res.Remainder >= 0 && res.Remainder < divisor)
		}
	}
}

func TestPlanDivision_LeadingDigitSkip(t *testing.T) {
	plan, err := PlanDivision(7, 12)
	require.NoError(t, err)

	assert.Empty(t, plan.Steps)
	assert.Empty(t, plan.Targets)
	assert.Equal(t, 0, plan.Result.Quotient)
	assert.Equal(t, 7, plan.Result.Remainder)
}

func TestPlanDivision_SkipsDigitsBeforeStart(t *testing.T) {
	// 1 < 4, so the first step consumes "13"
	plan, err := PlanDivision(132, 4)
	require.NoError(t, err)

	require.Len(t, plan.Steps, 2)
	assert.Equal(t, Step{Pos: 1, Chunk: 13, QDigit: 3, Product: 12, Remainder: 1}, plan.Steps[0])
	assert.Equal(t, Step{Pos: 2, Chunk: 12, QDigit: 3, Product: 12, Remainder: 0}, plan.Steps[1])
	assert.Equal(t, 33, plan.Result.Quotient)

	for _, tg := range plan.Targets {
		assert.NotEqual(t, CellAddr{Row: RowQuotient, Col: 0}, tg.Addr, "no quotient digit above a skipped digit")
	}
}

func TestPlanDivision_TargetOrder(t *testing.T) {
	plan, err := PlanDivision(84, 4)
	require.NoError(t, err)

	// step 0: 8 / 4 = 2, 2*4 = 8, 8-8 = 0; step 1: 4 / 4 = 1, 1*4 = 4, 4-4 = 0
	want := []struct {
		addr CellAddr
		ch   byte
	}{
		{CellAddr{Row: RowQuotient, Col: 0}, '2'},
		{CellAddr{Row: RowProduct, Step: 0, Col: 0}, '8'},
		{CellAddr{Row: RowRemainder, Step: 0, Col: 0}, '0'},
		{CellAddr{Row: RowQuotient, Col: 1}, '1'},
		{CellAddr{Row: RowProduct, Step: 1, Col: 1}, '4'},
		{CellAddr{Row: RowRemainder, Step: 1, Col: 1}, '0'},
	}
	require.Len(t, plan.Targets, len(want))
	for i, w := range want {
		assert.Equal(t, w.addr, plan.Targets[i].Addr, "target %d", i)
		assert.Equal(t, w.ch, plan.Targets[i].Expected, "target %d", i)
		assert.Equal(t, KindDigit, plan.Targets[i].Kind)
		assert.NotEmpty(t, plan.Targets[i].Hint)
	}
}

func TestPlanDivision_ProductDigitsRightToLeft(t *testing.T) {
	// 97 / 4: first step 9/4 = 2 r1, second 17/4 = 4 r1 with product 16
	plan, err := PlanDivision(97, 4)
	require.NoError(t, err)

	var product []Target
	for _, tg := range plan.Targets {
		if tg.Addr.Row == RowProduct && tg.Addr.Step == 1 {
			product = append(product, tg)
		}
	}
	require.Len(t, product, 2)
	assert.Equal(t, byte('6'), product[0].Expected)
	assert.Equal(t, 1, product[0].Addr.Col)
	assert.Equal(t, byte('1'), product[1].Expected)
	assert.Equal(t, 0, product[1].Addr.Col)
}

func TestPlanDivision_ZeroQuotientDigitInMiddle(t *testing.T) {
	plan, err := PlanDivision(305, 3)
	require.NoError(t, err)

	require.Len(t, plan.Steps, 3)
	assert.Equal(t, 0, plan.Steps[1].QDigit)
	assert.Equal(t, 101, plan.Result.Quotient)
	assert.Equal(t, 2, plan.Result.Remainder)
}

func TestPlanDivision_BringDownDigitIsGiven(t *testing.T) {
	plan, err := PlanDivision(84, 4)
	require.NoError(t, err)

	cell, ok := plan.Cell(CellAddr{Row: RowRemainder, Step: 0, Col: 1})
	require.True(t, ok)
	assert.Equal(t, KindGiven, cell.Kind)
	assert.Equal(t, byte('4'), cell.Char)
	assert.False(t, cell.Interactive)
}

func TestPlanDivision_LargeDivisor(t *testing.T) {
	plan, err := PlanDivision(9876, 37)
	require.NoError(t, err)
	assert.Equal(t, 9876/37, plan.Result.Quotient)
	assert.Equal(t, 9876%37, plan.Result.Remainder)
}

func TestPlanDivision_InvalidOperands(t *testing.T) {
	tests := []struct {
		name              string
		dividend, divisor int
	}{
		{"divisor one", 10, 1},
		{"divisor zero", 10, 0},
		{"zero dividend", 0, 3},
		{"negative dividend", -5, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanDivision(tt.dividend, tt.divisor)
			assert.ErrorIs(t, err, ErrOperandRange)
		})
	}
}
