package accounting

import (
	"fmt"
	"sort"

	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildCashFlowMatrix pivots a snapshot of ledger records into the category
// by month grid. It is a pure function of its inputs: categories come from
// the records themselves (a category absent from every record emits no row),
// records the pivot cannot place are reported as violations and excluded,
// and the input is never mutated.
//
// costCenters supplies the kind registry used to detect direction/kind
// mismatches; records referencing an unregistered cost center are bucketed
// normally (the registry is advisory for aggregation, authoritative only at
// the editing boundary).
func BuildCashFlowMatrix(records []domain.LedgerRecord, costCenters []domain.CostCenter, expandSubItems bool) domain.CashFlowMatrix {
	kinds := make(map[string]domain.CostCenterKind, len(costCenters))
	for _, cc := range costCenters {
		kinds[cc.Name] = cc.Kind
	}

	var m domain.CashFlowMatrix
	var income, expense []domain.LedgerRecord
	for _, r := range records {
		if !r.Direction.IsValid() {
			m.Violations = append(m.Violations, domain.RecordViolation{
				RecordID: r.RecordID,
				Reason:   fmt.Sprintf("unknown direction %q", r.Direction),
			})
			continue
		}
		if kind, ok := kinds[r.CostCenter]; ok && kind != r.Direction.CostCenterKind() {
			m.Violations = append(m.Violations, domain.RecordViolation{
				RecordID: r.RecordID,
				Reason:   fmt.Sprintf("cost center %q has kind %s, record direction is %s", r.CostCenter, kind, r.Direction),
			})
			continue
		}
		if _, ok := r.MonthIndex(); !ok {
			m.Violations = append(m.Violations, domain.RecordViolation{
				RecordID: r.RecordID,
				Reason:   fmt.Sprintf("due date %q is not a calendar date", r.DueDate),
			})
			continue
		}
		if r.Direction == domain.Receivable {
			income = append(income, r)
		} else {
			expense = append(expense, r)
		}
	}

	m.IncomeRows = buildRows(income, expandSubItems)
	m.ExpenseRows = buildRows(expense, expandSubItems)

	for _, row := range m.IncomeRows {
		if row.SubItem {
			continue
		}
		for i := range row.Months {
			m.TotalIn[i] = m.TotalIn[i].Add(row.Months[i])
		}
	}
	for _, row := range m.ExpenseRows {
		if row.SubItem {
			continue
		}
		for i := range row.Months {
			m.TotalOut[i] = m.TotalOut[i].Add(row.Months[i])
		}
	}
	for i := 0; i < domain.MonthsInYear; i++ {
		m.Balance[i] = m.TotalIn[i].Sub(m.TotalOut[i])
		m.AnnualIn = m.AnnualIn.Add(m.TotalIn[i])
		m.AnnualOut = m.AnnualOut.Add(m.TotalOut[i])
		m.AnnualBalance = m.AnnualBalance.Add(m.Balance[i])
	}
	return m
}

// buildRows produces one row per distinct cost center in lexicographic
// order, optionally followed by its sub-item drill-down rows. Sub-item rows
// re-slice the parent's records, so their vectors sum to the parent's.
func buildRows(records []domain.LedgerRecord, expandSubItems bool) []domain.CashFlowRow {
	byCenter := make(map[string][]domain.LedgerRecord)
	for _, r := range records {
		byCenter[r.CostCenter] = append(byCenter[r.CostCenter], r)
	}
	centers := make([]string, 0, len(byCenter))
	for name := range byCenter {
		centers = append(centers, name)
	}
	sort.Strings(centers)

	rows := make([]domain.CashFlowRow, 0, len(centers))
	for _, name := range centers {
		group := byCenter[name]
		rows = append(rows, sumRow(name, false, group))
		if !expandSubItems {
			continue
		}
		bySub := make(map[string][]domain.LedgerRecord)
		for _, r := range group {
			bySub[r.SubItem] = append(bySub[r.SubItem], r)
		}
		subs := make([]string, 0, len(bySub))
		for sub := range bySub {
			subs = append(subs, sub)
		}
		sort.Strings(subs)
		for _, sub := range subs {
			rows = append(rows, sumRow(sub, true, bySub[sub]))
		}
	}
	return rows
}

func sumRow(label string, subItem bool, records []domain.LedgerRecord) domain.CashFlowRow {
	row := domain.CashFlowRow{Label: label, SubItem: subItem}
	for _, r := range records {
		idx, ok := r.MonthIndex()
		if !ok {
			continue // filtered out before bucketing
		}
		row.Months[idx] = row.Months[idx].Add(r.Amount)
		row.Total = row.Total.Add(r.Amount)
	}
	return row
}

// SumAmounts folds a record slice into a single decimal total.
func SumAmounts(records []domain.LedgerRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}
