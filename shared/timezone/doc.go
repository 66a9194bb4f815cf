// Package timezone pins the wall clock of the service to one IANA location.
//
// Stay dates arrive as plain calendar days ("2026-03-14") and are read in the
// hotel's own timezone, so "today" for the lead-time rules is the hotel's today
// and not the server's. Call Setup once at startup with APP_TIMEZONE; until then
// every helper works in UTC.
package timezone
