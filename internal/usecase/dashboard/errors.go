package dashboard

import "errors"

// ErrUnknownDataset is returned when a panel selector names a dataset
// other than sp or news.
var ErrUnknownDataset = errors.New("dataset must be \"sp\" or \"news\"")
