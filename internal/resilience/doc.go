// Package resilience provides reliability patterns for upstream calls:
// circuit breakers and retry with exponential backoff. The spreadsheet
// fetch path runs every request through both.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.SheetFetchConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return fetchSheet()
//	})
//
//	err := retry.WithBackoff(ctx, retry.SheetFetchConfig(), func() error {
//	    return performOperation()
//	})
package resilience
