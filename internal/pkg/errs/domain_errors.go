package errs

// Sentinels shared across the usecase and handler layers.
var (
	ErrOfferNotFound = New("offer not found")

	// ingestion
	ErrUpstreamFetch = New("upstream fetch failed")
	ErrOfferPersist  = New("offer persistence failed")
)
