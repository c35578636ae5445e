// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Current time in the app timezone:
//     now := timezone.Now()
//
//  2. Calendar days, as used by slot availability:
//     day, err := timezone.ParseDay("2024-06-10") // midnight in the app timezone
//     day = timezone.StartOfDay(someTime)         // drop the time of day
//
//  3. Formatting times in app timezone:
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names: "UTC", "Asia/Jakarta", "America/New_York".
package timezone
