// Package finstat provides types and functions for building, deriving and
// analyzing company financial statements. Statements are sparse maps from a
// fixed taxonomy of line items to amounts, split between entered items (raw
// facts) and calculated items (aggregates derived on demand).
//
// The core functionalities include:
//   - Statement Taxonomies: Balance Sheet, Profit & Loss and Cash Flow line
//     items with declarative roll-up rules, so every aggregate (Assets,
//     GrossProfit, NetCashFlow, ...) is derived the same way everywhere.
//   - Double-Entry Posting: a debit/credit polarity resolver inferred from
//     the Balance Sheet roll-up rules, so transactions can be posted without
//     tracking signs by hand.
//   - Cash Flow Derivation: an indirect-method cash flow statement computed
//     from two consecutive balance sheets and the intervening profit & loss,
//     including the tax shield on interest.
//   - Multi-Period Books: the Accounts type holds a company's statements
//     over many dates and periods, with consistency checks, tax estimation
//     and common ratios.
//   - Data Persistence: accounts books are stored as hjson, a comment- and
//     human-friendly JSON dialect, in a canonical normalized form.
//
// This package serves as the foundational logic for the `fst` command-line
// tool. The tvm and fixedincome subpackages supply the time-value-of-money
// and fixed-income math used around statement analysis.
package finstat
