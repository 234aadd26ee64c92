// Package ozpocket implements a personal finance tracker for a working
// holiday in Australia.
//
// It keeps cash balances, simple investments and visa-qualifying work-day
// counts across three currencies (AUD, TWD, USD), persists the whole state
// as a single JSON snapshot, and refreshes exchange rates from a public
// quote service anchored on AUD.
package ozpocket
