// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Initialise once at startup:
//     timezone.Init(cfg)
//
//  2. Current time and conversions:
//     now := timezone.Now()
//     appTime := timezone.ToAppTime(someTime)
//
//  3. Parsing dates sent by clients:
//     t, err := timezone.Parse(time.DateOnly, "2024-01-01")
//
// Until Init is called every function works in UTC.
// The timezone is configured via the APP_TIMEZONE environment variable
// and must be a standard IANA timezone database name.
package timezone
