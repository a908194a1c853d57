package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bibbank/mortgage-service/pkg/money"
)

// DefaultMaxMonthsFactor bounds a ledger at this many times the mortgage term.
const DefaultMaxMonthsFactor = 10

// MonthChoice is a computed month offered as a speculation target.
type MonthChoice struct {
	Month int
	Name  string
}

// LedgerOption configures a Ledger.
type LedgerOption func(*Ledger)

// WithRounding sets the precision context. The default is money.Standard.
func WithRounding(r money.Rounding) LedgerOption {
	return func(l *Ledger) {
		if !r.IsZero() {
			l.rounding = r
		}
	}
}

// WithMaxMonthsFactor caps the ledger at factor times the term. Non-positive
// factors leave the default in place.
func WithMaxMonthsFactor(factor int) LedgerOption {
	return func(l *Ledger) {
		if factor > 0 {
			l.maxMonthsFactor = factor
		}
	}
}

// Ledger is the month-by-month amortization of one mortgage. It is extended
// one entry at a time until the balance reaches zero. Editing an override at
// month m drops entries from m onward so they are recomputed on demand.
//
// A Ledger is owned by a single caller and is not safe for concurrent
// mutation. Use Clone to obtain an independent copy.
type Ledger struct {
	principal  decimal.Decimal
	startYear  int
	startMonth int
	term       int

	periods         Periods
	rounding        money.Rounding
	maxMonthsFactor int

	entries       []LedgerEntry
	overpayments  Overrides
	discrepancies Overrides

	cost      decimal.Decimal
	costValid bool
}

// NewLedger validates the inputs, resolves the period schedule and returns an
// empty ledger owning copies of the override maps.
func NewLedger(inputs MortgageInputs, overpayments, discrepancies Overrides, opts ...LedgerOption) (*Ledger, error) {
	l := &Ledger{
		principal:       inputs.Amount,
		startYear:       inputs.StartYear,
		startMonth:      inputs.StartMonth,
		term:            inputs.Term,
		rounding:        money.Standard,
		maxMonthsFactor: DefaultMaxMonthsFactor,
		overpayments:    overpayments.Clone(),
		discrepancies:   discrepancies.Clone(),
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := inputs.Validate(); err != nil {
		return nil, err
	}

	periods, err := inputs.Periods(l.rounding)
	if err != nil {
		return nil, fmt.Errorf("resolve periods: %w", err)
	}
	l.periods = periods

	return l, nil
}

// ---------------------------------------------------------------------------
// State
// ---------------------------------------------------------------------------

// Balance is the closing balance of the last entry, or -principal before the first.
func (l *Ledger) Balance() decimal.Decimal {
	if len(l.entries) == 0 {
		return l.principal.Neg()
	}
	return l.entries[len(l.entries)-1].ClosingBalance()
}

// Complete reports whether the balance is exactly zero.
func (l *Ledger) Complete() bool {
	return l.Balance().IsZero()
}

// Len is the number of entries computed so far.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// MaxMonths is the iteration cap.
func (l *Ledger) MaxMonths() int {
	return l.term * l.maxMonthsFactor
}

// Periods returns the resolved rate schedule.
func (l *Ledger) Periods() Periods {
	return l.periods
}

// Rounding returns the ledger's precision context.
func (l *Ledger) Rounding() money.Rounding {
	return l.rounding
}

// Entries returns a copy of the computed entries.
func (l *Ledger) Entries() []LedgerEntry {
	return append([]LedgerEntry(nil), l.entries...)
}

// Entry returns the computed entry for month.
func (l *Ledger) Entry(month int) (LedgerEntry, bool) {
	if month < 0 || month >= len(l.entries) {
		return LedgerEntry{}, false
	}
	return l.entries[month], true
}

// Overrides returns a copy of the override map for kind.
func (l *Ledger) Overrides(kind OverrideKind) Overrides {
	target, err := l.overridesFor(kind)
	if err != nil {
		return nil
	}
	return target.Clone()
}

// ---------------------------------------------------------------------------
// Computation
// ---------------------------------------------------------------------------

// CalculateEntry appends the next month.
func (l *Ledger) CalculateEntry() error {
	month := len(l.entries)

	period, err := l.periods.GetPeriod(month)
	if err != nil {
		return fmt.Errorf("calculate month %d: %w", month, err)
	}

	opening := l.Balance()
	year, calendarMonth := l.calendar(month)

	entry := LedgerEntry{
		MonthNumber:        month,
		Year:               year,
		Month:              calendarMonth,
		OpeningBalance:     opening,
		Interest:           l.rounding.Money(l.rounding.Div(opening.Mul(period.InterestRate), twelve)),
		Payment:            period.Payment,
		Overpayment:        period.DefaultOverpayment,
		Discrepancy:        decimal.Zero,
		DefaultOverpayment: period.DefaultOverpayment,
	}

	if amount, ok := l.overpayments.Get(month); ok {
		entry.Overpayment = amount
		entry.OverpaymentOverridden = true
	}
	if amount, ok := l.discrepancies.Get(month); ok {
		entry.Discrepancy = amount
		entry.DiscrepancyOverridden = true
	}

	entry.Normalise()

	l.entries = append(l.entries, entry)
	l.costValid = false
	return nil
}

// CalculateEntries extends the ledger until it is complete. It returns
// ErrNonConvergent once MaxMonths entries exist without reaching zero.
func (l *Ledger) CalculateEntries() error {
	limit := l.MaxMonths()
	for !l.Complete() {
		if len(l.entries) >= limit {
			return fmt.Errorf("balance %s after %d months: %w", l.Balance(), len(l.entries), ErrNonConvergent)
		}
		if err := l.CalculateEntry(); err != nil {
			return err
		}
	}
	return nil
}

// CalculateCost completes the ledger and returns what the mortgage cost beyond
// its principal: the sum of interest and discrepancies, negated so that an
// expense is positive. The result is memoised until the next Invalidate.
func (l *Ledger) CalculateCost() (decimal.Decimal, error) {
	if l.costValid {
		return l.cost, nil
	}
	if err := l.CalculateEntries(); err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, e := range l.entries {
		total = total.Add(e.Interest).Add(e.Discrepancy)
	}

	l.cost = total.Neg()
	l.costValid = true
	return l.cost, nil
}

// MonthChoices completes the ledger and lists every computed month.
func (l *Ledger) MonthChoices() ([]MonthChoice, error) {
	if err := l.CalculateEntries(); err != nil {
		return nil, err
	}

	choices := make([]MonthChoice, 0, len(l.entries))
	for _, e := range l.entries {
		choices = append(choices, MonthChoice{Month: e.MonthNumber, Name: e.MonthName()})
	}
	return choices, nil
}

// Invalidate drops the entries from month onward and the memoised cost.
func (l *Ledger) Invalidate(month int) {
	if month < 0 {
		month = 0
	}
	if month < len(l.entries) {
		l.entries = l.entries[:month]
	}
	l.costValid = false
}

// ---------------------------------------------------------------------------
// Overrides
// ---------------------------------------------------------------------------

// SetOverride stores amount for month. Entries from month onward are dropped
// only when amount differs from the month's current effective input.
func (l *Ledger) SetOverride(kind OverrideKind, month int, amount decimal.Decimal) error {
	target, err := l.overridesFor(kind)
	if err != nil {
		return err
	}
	if err := l.checkMonth(month); err != nil {
		return err
	}

	current, err := l.effective(kind, month)
	if err != nil {
		return err
	}

	target[month] = amount
	if current.Equal(amount) {
		l.markOverridden(kind, month, true)
		return nil
	}

	l.Invalidate(month)
	return nil
}

// DeleteOverride removes the override for month, dropping entries from month
// onward when the default differs from the removed value.
func (l *Ledger) DeleteOverride(kind OverrideKind, month int) error {
	target, err := l.overridesFor(kind)
	if err != nil {
		return err
	}
	if err := l.checkMonth(month); err != nil {
		return err
	}

	current, ok := target[month]
	if !ok {
		return nil
	}

	fallback, err := l.defaultFor(kind, month)
	if err != nil {
		return err
	}

	delete(target, month)
	if current.Equal(fallback) {
		l.markOverridden(kind, month, false)
		return nil
	}

	l.Invalidate(month)
	return nil
}

// SetOverpayment overrides the overpayment for month.
func (l *Ledger) SetOverpayment(month int, amount decimal.Decimal) error {
	return l.SetOverride(KindOverpayment, month, amount)
}

// DeleteOverpayment restores the default overpayment for month.
func (l *Ledger) DeleteOverpayment(month int) error {
	return l.DeleteOverride(KindOverpayment, month)
}

// SetDiscrepancy records a discrepancy for month.
func (l *Ledger) SetDiscrepancy(month int, amount decimal.Decimal) error {
	return l.SetOverride(KindDiscrepancy, month, amount)
}

// DeleteDiscrepancy removes the discrepancy for month.
func (l *Ledger) DeleteDiscrepancy(month int) error {
	return l.DeleteOverride(KindDiscrepancy, month)
}

// Clone returns a deep copy sharing no mutable state with l.
func (l *Ledger) Clone() *Ledger {
	out := *l
	out.entries = append([]LedgerEntry(nil), l.entries...)
	out.overpayments = l.overpayments.Clone()
	out.discrepancies = l.discrepancies.Clone()
	return &out
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (l *Ledger) overridesFor(kind OverrideKind) (Overrides, error) {
	switch kind {
	case KindOverpayment:
		return l.overpayments, nil
	case KindDiscrepancy:
		return l.discrepancies, nil
	default:
		return nil, fmt.Errorf("unknown override kind %d", int(kind))
	}
}

func (l *Ledger) checkMonth(month int) error {
	if month < 0 || month >= len(l.entries) {
		return fmt.Errorf("month %d of %d computed: %w", month, len(l.entries), ErrUnknownMonth)
	}
	return nil
}

// defaultFor is the input a month uses with no override present.
func (l *Ledger) defaultFor(kind OverrideKind, month int) (decimal.Decimal, error) {
	if kind == KindDiscrepancy {
		return decimal.Zero, nil
	}
	period, err := l.periods.GetPeriod(month)
	if err != nil {
		return decimal.Zero, err
	}
	return period.DefaultOverpayment, nil
}

func (l *Ledger) effective(kind OverrideKind, month int) (decimal.Decimal, error) {
	target, err := l.overridesFor(kind)
	if err != nil {
		return decimal.Zero, err
	}
	if amount, ok := target[month]; ok {
		return amount, nil
	}
	return l.defaultFor(kind, month)
}

func (l *Ledger) markOverridden(kind OverrideKind, month int, overridden bool) {
	if month >= len(l.entries) {
		return
	}
	if kind == KindOverpayment {
		l.entries[month].OverpaymentOverridden = overridden
	} else {
		l.entries[month].DiscrepancyOverridden = overridden
	}
}

// calendar maps a month index to its calendar year and month (1-12).
func (l *Ledger) calendar(month int) (year, calendarMonth int) {
	offset := l.startMonth - 1 + month
	return l.startYear + offset/12, offset%12 + 1
}
