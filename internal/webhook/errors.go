package webhook

import "errors"

// ErrDelivery is wrapped by every error returned from Sink.Deliver.
var ErrDelivery = errors.New("webhook delivery failed")
